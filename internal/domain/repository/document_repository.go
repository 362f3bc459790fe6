package repository

import (
	"context"
	"time"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
)

// DocumentFilter paginación y rango opcional sobre la fecha de registro.
// From es inclusivo y To exclusivo, ambos instantes absolutos.
type DocumentFilter struct {
	Limit  int
	Offset int
	From   *time.Time
	To     *time.Time
}

// DocumentRepository define el puerto de persistencia de documentos.
type DocumentRepository interface {
	// CreateMany inserta los documentos en orden y completa ID y CreatedAt.
	CreateMany(ctx context.Context, docs []*entity.Document) error

	// List devuelve la página pedida, del más reciente al más antiguo (created_at DESC, id DESC),
	// y el total de filas que cumplen el filtro.
	List(ctx context.Context, f DocumentFilter) ([]*entity.Document, int, error)

	// ListByFilename documentos de un lote en el orden en que se enviaron.
	ListByFilename(ctx context.Context, filename string) ([]*entity.Document, error)
}
