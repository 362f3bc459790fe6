package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo resúmenes de envío sobre la tabla transacciones (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, fecha_lote, correlativo, nombre_archivo, cantidad_registros, importe_total, created_at`

// Create inserta el resumen y completa ID y CreatedAt.
func (r *BatchRepo) Create(ctx context.Context, b *entity.Batch) error {
	query := `
		INSERT INTO transacciones (fecha_lote, correlativo, nombre_archivo, cantidad_registros, importe_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		b.BatchDate, b.Correlative, b.Filename, b.DocumentCount, b.TotalAmount,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("lote %s ya existe: %w", b.Filename, err)
		}
		return fmt.Errorf("insert transaccion: %w", err)
	}
	return nil
}

// GetByFilename devuelve nil, nil si no existe.
func (r *BatchRepo) GetByFilename(ctx context.Context, filename string) (*entity.Batch, error) {
	var b entity.Batch
	err := r.q.QueryRow(ctx,
		`SELECT `+batchColumns+` FROM transacciones WHERE nombre_archivo = $1`, filename,
	).Scan(&b.ID, &b.BatchDate, &b.Correlative, &b.Filename, &b.DocumentCount, &b.TotalAmount, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaccion: %w", err)
	}
	return &b, nil
}

// List pagina del más reciente al más antiguo y devuelve el total.
func (r *BatchRepo) List(ctx context.Context, limit, offset int) ([]*entity.Batch, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM transacciones`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transacciones: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+batchColumns+` FROM transacciones ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list transacciones: %w", err)
	}
	defer rows.Close()

	var out []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.BatchDate, &b.Correlative, &b.Filename, &b.DocumentCount, &b.TotalAmount, &b.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan transaccion: %w", err)
		}
		out = append(out, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows transacciones: %w", err)
	}
	return out, total, nil
}
