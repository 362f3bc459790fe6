package repository

import (
	"context"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
)

// DraftRepository guarda las filas en edición del formulario.
type DraftRepository interface {
	// ReplaceAll borra las filas guardadas e inserta las recibidas de forma atómica.
	ReplaceAll(ctx context.Context, rows []*entity.DraftRow) error
	List(ctx context.Context) ([]*entity.DraftRow, error)
	DeleteAll(ctx context.Context) error
}
