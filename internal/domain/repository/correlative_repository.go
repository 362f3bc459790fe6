package repository

import (
	"context"
	"time"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
)

// CorrelativeRepository define el puerto del contador diario de lotes.
type CorrelativeRepository interface {
	// Next bloquea la fila de la fecha (SELECT ... FOR UPDATE), la crea con 1 si no existe o la
	// incrementa, y devuelve el valor asignado. Sólo debe llamarse dentro de la transacción de envío.
	Next(ctx context.Context, date time.Time) (int, error)

	// Current devuelve el contador de la fecha sin bloquear; nil, nil si aún no hay lotes ese día.
	Current(ctx context.Context, date time.Time) (*entity.CorrelativeCounter, error)
}
