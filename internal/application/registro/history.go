package registro

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/domain"
	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	domregistro "github.com/jhoicas/concar-rcp/internal/domain/registro"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
	"github.com/jhoicas/concar-rcp/pkg/concar"
)

// HistoryUseCase consultas de sólo lectura sobre documentos y lotes registrados.
type HistoryUseCase struct {
	documentRepo repository.DocumentRepository
	batchRepo    repository.BatchRepository
	location     *time.Location
}

// NewHistoryUseCase construye el caso de uso. location define el día calendario de los filtros por fecha.
func NewHistoryUseCase(documentRepo repository.DocumentRepository, batchRepo repository.BatchRepository, location *time.Location) *HistoryUseCase {
	if location == nil {
		location = time.UTC
	}
	return &HistoryUseCase{documentRepo: documentRepo, batchRepo: batchRepo, location: location}
}

// ListDocuments devuelve documentos del más reciente al más antiguo.
// fechaDesde y fechaHasta filtran por día de registro y ambos son inclusivos.
func (uc *HistoryUseCase) ListDocuments(ctx context.Context, q dto.HistoryQuery) (*dto.DocumentPage, error) {
	q.DefaultPage()
	filter := repository.DocumentFilter{Limit: q.Limit, Offset: q.Offset}

	var fieldErrs []domain.FieldError
	if from, err := uc.dayStart(q.FechaDesde); err != nil {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "fechaDesde", Message: err.Error()})
	} else {
		filter.From = from
	}
	if to, err := uc.dayStart(q.FechaHasta); err != nil {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "fechaHasta", Message: err.Error()})
	} else if to != nil {
		end := to.AddDate(0, 0, 1)
		filter.To = &end
	}
	if len(fieldErrs) > 0 {
		return nil, domain.NewValidationError(fieldErrs...)
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, domain.NewValidationError(domain.FieldError{
			Field: "fechaDesde", Message: "no puede ser posterior a fechaHasta",
		})
	}

	docs, total, err := uc.documentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar documentos: %w", err)
	}
	return &dto.DocumentPage{
		Success:    true,
		Documentos: toDocumentResponses(docs),
		Total:      total,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}, nil
}

// dayStart medianoche del día indicado en la zona configurada; nil si raw está vacío.
func (uc *HistoryUseCase) dayStart(raw string) (*time.Time, error) {
	d, err := domregistro.ParseDate(raw)
	if err != nil || d == nil {
		return nil, err
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, uc.location)
	return &start, nil
}

// ListBatches lista los resúmenes de lote del más reciente al más antiguo.
func (uc *HistoryUseCase) ListBatches(ctx context.Context, page dto.PageRequest) (*dto.BatchPage, error) {
	page.DefaultPage()
	batches, total, err := uc.batchRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar lotes: %w", err)
	}
	items := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		items = append(items, toBatchResponse(b))
	}
	return &dto.BatchPage{Success: true, Lotes: items, Total: total, Limit: page.Limit, Offset: page.Offset}, nil
}

// GetBatch devuelve el resumen del lote y sus documentos en el orden de envío.
func (uc *HistoryUseCase) GetBatch(ctx context.Context, filename string) (*dto.BatchDetailResponse, error) {
	batch, docs, err := loadBatch(ctx, uc.batchRepo, uc.documentRepo, filename)
	if err != nil {
		return nil, err
	}
	return &dto.BatchDetailResponse{
		BatchResponse: toBatchResponse(batch),
		Documentos:    toDocumentResponses(docs),
	}, nil
}

func loadBatch(
	ctx context.Context,
	batchRepo repository.BatchRepository,
	documentRepo repository.DocumentRepository,
	filename string,
) (*entity.Batch, []*entity.Document, error) {
	filename = strings.TrimSpace(filename)
	// Un nombre que no es RCP válido no puede existir.
	if _, _, err := concar.ParseFilename(filename); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	batch, err := batchRepo.GetByFilename(ctx, filename)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener lote: %w", err)
	}
	if batch == nil {
		return nil, nil, fmt.Errorf("%w: lote %q", domain.ErrNotFound, filename)
	}
	docs, err := documentRepo.ListByFilename(ctx, filename)
	if err != nil {
		return nil, nil, fmt.Errorf("obtener documentos del lote: %w", err)
	}
	return batch, docs, nil
}
