package registro

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/domain"
	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
)

// MaxDraftRows filas que se guardan como máximo en el borrador.
const MaxDraftRows = 1000

// DraftUseCase guarda y recupera las filas del formulario que aún no se enviaron.
type DraftUseCase struct {
	repo repository.DraftRepository
	now  func() time.Time
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(repo repository.DraftRepository) *DraftUseCase {
	return &DraftUseCase{repo: repo, now: time.Now}
}

// Save reemplaza todas las filas guardadas por las recibidas. Las filas sin id reciben un UUID.
func (uc *DraftUseCase) Save(ctx context.Context, req dto.SaveDraftsRequest) (*dto.DraftsResponse, error) {
	if len(req.Filas) > MaxDraftRows {
		return nil, domain.NewValidationError(domain.FieldError{
			Field: "filas", Message: fmt.Sprintf("máximo %d filas", MaxDraftRows),
		})
	}
	now := uc.now()
	seen := make(map[string]int, len(req.Filas))
	rows := make([]*entity.DraftRow, 0, len(req.Filas))
	for i, in := range req.Filas {
		row := toDraftRow(i, in)
		if row.ID == "" {
			row.ID = uuid.New().String()
		}
		if prev, ok := seen[row.ID]; ok {
			return nil, domain.NewValidationError(domain.FieldError{
				Row: i + 1, Field: "id", Message: fmt.Sprintf("repetido en la fila %d", prev+1),
			})
		}
		seen[row.ID] = i
		row.UpdatedAt = now
		rows = append(rows, row)
	}
	if err := uc.repo.ReplaceAll(ctx, rows); err != nil {
		return nil, fmt.Errorf("guardar borrador: %w", err)
	}
	return toDraftsResponse(rows), nil
}

// Load devuelve las filas guardadas en su orden original.
func (uc *DraftUseCase) Load(ctx context.Context) (*dto.DraftsResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer borrador: %w", err)
	}
	return toDraftsResponse(rows), nil
}

// Clear elimina el borrador (tras un envío exitoso o al limpiar el formulario).
func (uc *DraftUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("limpiar borrador: %w", err)
	}
	return nil
}

func toDraftsResponse(rows []*entity.DraftRow) *dto.DraftsResponse {
	out := &dto.DraftsResponse{Filas: make([]dto.DraftRowDTO, 0, len(rows))}
	for _, r := range rows {
		out.Filas = append(out.Filas, toDraftRowDTO(r))
		if out.UpdatedAt == nil || r.UpdatedAt.After(*out.UpdatedAt) {
			t := r.UpdatedAt
			out.UpdatedAt = &t
		}
	}
	return out
}
