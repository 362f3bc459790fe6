package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo filas en edición sobre la tabla borradores.
type DraftRepo struct {
	q Querier
}

// NewDraftRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDraftRepository(q Querier) *DraftRepo {
	return &DraftRepo{q: q}
}

// ReplaceAll borra e inserta dentro de una transacción (o savepoint si q ya es una tx).
func (r *DraftRepo) ReplaceAll(ctx context.Context, rows []*entity.DraftRow) error {
	return pgx.BeginFunc(ctx, r.q, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM borradores`); err != nil {
			return fmt.Errorf("delete borradores: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"borradores"},
			[]string{"id", "posicion", "ruc_cliente", "ruc_proveedor", "tipo_documento", "nro_documento",
				"cod_interno_doc", "fecha_emision", "fecha_vencimiento", "fecha_confirmacion",
				"importe", "mon", "updated_at"},
			pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
				d := rows[i]
				return []any{d.ID, d.Position, d.ClientTaxID, d.ProviderTaxID, d.DocumentType, d.DocumentNumber,
					d.InternalCode, d.IssueDate, d.DueDate, d.ConfirmationDate,
					d.Amount, d.Currency, d.UpdatedAt}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("insert borradores: %w", err)
		}
		return nil
	})
}

// List devuelve las filas por posición.
func (r *DraftRepo) List(ctx context.Context) ([]*entity.DraftRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, posicion, ruc_cliente, ruc_proveedor, tipo_documento, nro_documento,
		       cod_interno_doc, fecha_emision, fecha_vencimiento, fecha_confirmacion,
		       importe, mon, updated_at
		FROM borradores ORDER BY posicion`)
	if err != nil {
		return nil, fmt.Errorf("list borradores: %w", err)
	}
	defer rows.Close()

	var out []*entity.DraftRow
	for rows.Next() {
		var d entity.DraftRow
		if err := rows.Scan(&d.ID, &d.Position, &d.ClientTaxID, &d.ProviderTaxID, &d.DocumentType, &d.DocumentNumber,
			&d.InternalCode, &d.IssueDate, &d.DueDate, &d.ConfirmationDate,
			&d.Amount, &d.Currency, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan borrador: %w", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows borradores: %w", err)
	}
	return out, nil
}

// DeleteAll vacía el borrador.
func (r *DraftRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM borradores`); err != nil {
		return fmt.Errorf("delete borradores: %w", err)
	}
	return nil
}
