package repository

import (
	"context"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia del resumen de cada envío.
type BatchRepository interface {
	Create(ctx context.Context, batch *entity.Batch) error
	// GetByFilename devuelve nil, nil si no existe.
	GetByFilename(ctx context.Context, filename string) (*entity.Batch, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Batch, int, error)
}
