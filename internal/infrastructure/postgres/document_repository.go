package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, fecha_lote, correlativo, nombre_archivo, ruc_cliente, ruc_proveedor,
	tipo_documento, nro_documento, cod_interno_doc, fecha_emision, fecha_vencimiento,
	fecha_confirmacion, importe, mon, created_at`

// CreateMany inserta los documentos en un único round trip (pgx.Batch) y completa ID y CreatedAt.
// created_at es now() de la transacción, igual para todo el lote; el id conserva el orden de envío.
func (r *DocumentRepo) CreateMany(ctx context.Context, docs []*entity.Document) error {
	if len(docs) == 0 {
		return nil
	}
	query := `
		INSERT INTO documentos
			(fecha_lote, correlativo, nombre_archivo, ruc_cliente, ruc_proveedor, tipo_documento,
			 nro_documento, cod_interno_doc, fecha_emision, fecha_vencimiento, fecha_confirmacion,
			 importe, mon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	batch := &pgx.Batch{}
	for _, d := range docs {
		batch.Queue(query,
			d.BatchDate, d.Correlative, d.Filename, d.ClientTaxID, d.ProviderTaxID, d.DocumentType,
			d.DocumentNumber, nullIfEmpty(d.InternalCode), d.IssueDate, d.DueDate, d.ConfirmationDate,
			d.Amount, d.Currency,
		)
	}

	br := r.q.SendBatch(ctx, batch)
	for i, d := range docs {
		if err := br.QueryRow().Scan(&d.ID, &d.CreatedAt); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert documento %d: %w", i+1, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert documentos: %w", err)
	}
	return nil
}

// List aplica el filtro [From, To) sobre created_at y pagina del más reciente al más antiguo.
func (r *DocumentRepo) List(ctx context.Context, f repository.DocumentFilter) ([]*entity.Document, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, fmt.Sprintf("created_at < $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM documentos`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documentos: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM documentos%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		documentColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documentos: %w", err)
	}
	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// ListByFilename documentos del lote en el orden en que se insertaron.
func (r *DocumentRepo) ListByFilename(ctx context.Context, filename string) ([]*entity.Document, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+documentColumns+` FROM documentos WHERE nombre_archivo = $1 ORDER BY id`, filename)
	if err != nil {
		return nil, fmt.Errorf("list documentos por archivo: %w", err)
	}
	return scanDocuments(rows)
}

func scanDocuments(rows pgx.Rows) ([]*entity.Document, error) {
	defer rows.Close()
	var out []*entity.Document
	for rows.Next() {
		var (
			d            entity.Document
			internalCode *string
		)
		if err := rows.Scan(
			&d.ID, &d.BatchDate, &d.Correlative, &d.Filename, &d.ClientTaxID, &d.ProviderTaxID,
			&d.DocumentType, &d.DocumentNumber, &internalCode, &d.IssueDate, &d.DueDate,
			&d.ConfirmationDate, &d.Amount, &d.Currency, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		if internalCode != nil {
			d.InternalCode = *internalCode
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows documentos: %w", err)
	}
	return out, nil
}
