package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
)

var _ repository.CorrelativeRepository = (*CorrelativeRepo)(nil)

// CorrelativeRepo contador diario sobre la tabla correlativos (usable con pool o tx).
type CorrelativeRepo struct {
	q Querier
}

// NewCorrelativeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCorrelativeRepository(q Querier) *CorrelativeRepo {
	return &CorrelativeRepo{q: q}
}

// Next bloquea la fila del día (SELECT FOR UPDATE) y la incrementa; si no existe la crea con 1.
// Si otra transacción crea la misma fila en paralelo, el INSERT falla con correlativos_pkey o con
// un error de serialización, ambos reintentables por TxRunner.
func (r *CorrelativeRepo) Next(ctx context.Context, date time.Time) (int, error) {
	var last int
	err := r.q.QueryRow(ctx,
		`SELECT ultimo_correlativo FROM correlativos WHERE fecha = $1 FOR UPDATE`, date,
	).Scan(&last)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("lock correlativo: %w", err)
		}
		if _, err := r.q.Exec(ctx,
			`INSERT INTO correlativos (fecha, ultimo_correlativo, updated_at) VALUES ($1, 1, now())`, date,
		); err != nil {
			return 0, fmt.Errorf("insert correlativo: %w", err)
		}
		return 1, nil
	}

	var next int
	err = r.q.QueryRow(ctx, `
		UPDATE correlativos
		SET ultimo_correlativo = ultimo_correlativo + 1, updated_at = now()
		WHERE fecha = $1
		RETURNING ultimo_correlativo`, date,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("update correlativo: %w", err)
	}
	return next, nil
}

// Current lee el contador sin bloquear. nil, nil si no hay lotes en la fecha.
func (r *CorrelativeRepo) Current(ctx context.Context, date time.Time) (*entity.CorrelativeCounter, error) {
	var c entity.CorrelativeCounter
	err := r.q.QueryRow(ctx,
		`SELECT fecha, ultimo_correlativo, updated_at FROM correlativos WHERE fecha = $1`, date,
	).Scan(&c.Date, &c.LastValue, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get correlativo: %w", err)
	}
	return &c, nil
}
