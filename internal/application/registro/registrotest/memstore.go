// Package registrotest provee un almacén en memoria con transacciones serializadas para probar
// los casos de uso de registro sin PostgreSQL.
package registrotest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/concar-rcp/internal/application/registro"
	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
)

var (
	_ registro.SubmitTxRunner          = (*Store)(nil)
	_ repository.CorrelativeRepository = CorrelativeRepo{}
	_ repository.DocumentRepository    = DocumentRepo{}
	_ repository.BatchRepository       = BatchRepo{}
	_ repository.DraftRepository       = DraftRepo{}
)

// ErrInjected error devuelto por los fallos provocados con FailOnDocument / FailOnBatch.
var ErrInjected = errors.New("registrotest: fallo inyectado")

// Store estado compartido. Las transacciones se ejecutan de a una (mutex) y se deshacen
// restaurando una copia del estado, lo que equivale a aislamiento SERIALIZABLE.
type Store struct {
	mu    sync.Mutex
	state state

	nextDocID   int64
	nextBatchID int64

	// Now reloj para created_at; por defecto time.Now.
	Now func() time.Time
	// FailOnDocument hace fallar CreateMany si algún documento tiene ese número.
	FailOnDocument string
	// FailOnBatch hace fallar la creación del resumen.
	FailOnBatch bool
}

type state struct {
	counters map[time.Time]entity.CorrelativeCounter
	docs     []*entity.Document
	batches  []*entity.Batch
	drafts   []*entity.DraftRow
}

func (s state) clone() state {
	out := state{
		counters: make(map[time.Time]entity.CorrelativeCounter, len(s.counters)),
		docs:     append([]*entity.Document(nil), s.docs...),
		batches:  append([]*entity.Batch(nil), s.batches...),
		drafts:   append([]*entity.DraftRow(nil), s.drafts...),
	}
	for k, v := range s.counters {
		out.counters[k] = v
	}
	return out
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		state: state{counters: map[time.Time]entity.CorrelativeCounter{}},
		Now:   time.Now,
	}
}

// RunSerializable ejecuta fn con repos atados a la "transacción". Si fn falla, el estado vuelve al de antes.
func (s *Store) RunSerializable(ctx context.Context, fn func(
	correlativeRepo repository.CorrelativeRepository,
	documentRepo repository.DocumentRepository,
	batchRepo repository.BatchRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := s.state.clone()
	docID, batchID := s.nextDocID, s.nextBatchID
	// Igual que now() en PostgreSQL: un único instante para toda la transacción.
	v := view{s: s, inTx: true, txTime: s.Now()}
	if err := fn(CorrelativeRepo{v}, DocumentRepo{v}, BatchRepo{v}); err != nil {
		s.state = snapshot
		s.nextDocID, s.nextBatchID = docID, batchID
		return err
	}
	return nil
}

// Correlatives repo fuera de transacción.
func (s *Store) Correlatives() CorrelativeRepo { return CorrelativeRepo{view{s: s}} }

// Documents repo fuera de transacción.
func (s *Store) Documents() DocumentRepo { return DocumentRepo{view{s: s}} }

// Batches repo fuera de transacción.
func (s *Store) Batches() BatchRepo { return BatchRepo{view{s: s}} }

// Drafts repo de borradores.
func (s *Store) Drafts() DraftRepo { return DraftRepo{view{s: s}} }

// view acceso al estado; dentro de RunSerializable el mutex ya está tomado.
type view struct {
	s      *Store
	inTx   bool
	txTime time.Time
}

func (v view) lock() func() {
	if v.inTx {
		return func() {}
	}
	v.s.mu.Lock()
	return v.s.mu.Unlock
}

func (v view) now() time.Time {
	if v.inTx {
		return v.txTime
	}
	return v.s.Now()
}

// ── Correlativos ─────────────────────────────────────────────────────────────

// CorrelativeRepo contador diario en memoria.
type CorrelativeRepo struct{ v view }

// Next crea el contador con 1 o lo incrementa.
func (r CorrelativeRepo) Next(ctx context.Context, date time.Time) (int, error) {
	defer r.v.lock()()
	c, ok := r.v.s.state.counters[date]
	if !ok {
		c = entity.CorrelativeCounter{Date: date}
	}
	c.LastValue++
	c.UpdatedAt = r.v.now()
	r.v.s.state.counters[date] = c
	return c.LastValue, nil
}

// Current devuelve nil, nil si no hay contador para la fecha.
func (r CorrelativeRepo) Current(ctx context.Context, date time.Time) (*entity.CorrelativeCounter, error) {
	defer r.v.lock()()
	c, ok := r.v.s.state.counters[date]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ── Documentos ───────────────────────────────────────────────────────────────

// DocumentRepo documentos en memoria.
type DocumentRepo struct{ v view }

// CreateMany guarda copias de los documentos y completa ID y CreatedAt.
func (r DocumentRepo) CreateMany(ctx context.Context, docs []*entity.Document) error {
	defer r.v.lock()()
	now := r.v.now()
	for _, d := range docs {
		if r.v.s.FailOnDocument != "" && d.DocumentNumber == r.v.s.FailOnDocument {
			return ErrInjected
		}
		r.v.s.nextDocID++
		d.ID = r.v.s.nextDocID
		d.CreatedAt = now
		cp := *d
		r.v.s.state.docs = append(r.v.s.state.docs, &cp)
	}
	return nil
}

// List ordena por created_at DESC, id DESC y aplica el filtro [From, To).
func (r DocumentRepo) List(ctx context.Context, f repository.DocumentFilter) ([]*entity.Document, int, error) {
	defer r.v.lock()()
	var matched []*entity.Document
	for _, d := range r.v.s.state.docs {
		if f.From != nil && d.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !d.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, d)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	total := len(matched)
	if f.Offset >= total {
		return []*entity.Document{}, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < total {
		end = f.Offset + f.Limit
	}
	return copyDocs(matched[f.Offset:end]), total, nil
}

// ListByFilename documentos del lote por id ascendente.
func (r DocumentRepo) ListByFilename(ctx context.Context, filename string) ([]*entity.Document, error) {
	defer r.v.lock()()
	var out []*entity.Document
	for _, d := range r.v.s.state.docs {
		if d.Filename == filename {
			out = append(out, d)
		}
	}
	return copyDocs(out), nil
}

func copyDocs(in []*entity.Document) []*entity.Document {
	out := make([]*entity.Document, 0, len(in))
	for _, d := range in {
		cp := *d
		out = append(out, &cp)
	}
	return out
}

// ── Lotes ────────────────────────────────────────────────────────────────────

// BatchRepo resúmenes de lote en memoria.
type BatchRepo struct{ v view }

// Create rechaza fecha+correlativo o nombre repetidos, igual que las restricciones UNIQUE.
func (r BatchRepo) Create(ctx context.Context, b *entity.Batch) error {
	defer r.v.lock()()
	if r.v.s.FailOnBatch {
		return ErrInjected
	}
	for _, existing := range r.v.s.state.batches {
		if existing.Filename == b.Filename || (existing.BatchDate.Equal(b.BatchDate) && existing.Correlative == b.Correlative) {
			return errors.New("registrotest: lote duplicado " + b.Filename)
		}
	}
	r.v.s.nextBatchID++
	b.ID = r.v.s.nextBatchID
	b.CreatedAt = r.v.now()
	cp := *b
	r.v.s.state.batches = append(r.v.s.state.batches, &cp)
	return nil
}

// GetByFilename devuelve nil, nil si no existe.
func (r BatchRepo) GetByFilename(ctx context.Context, filename string) (*entity.Batch, error) {
	defer r.v.lock()()
	for _, b := range r.v.s.state.batches {
		if b.Filename == filename {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

// List del más reciente al más antiguo.
func (r BatchRepo) List(ctx context.Context, limit, offset int) ([]*entity.Batch, int, error) {
	defer r.v.lock()()
	all := append([]*entity.Batch(nil), r.v.s.state.batches...)
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	total := len(all)
	if offset >= total {
		return []*entity.Batch{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	out := make([]*entity.Batch, 0, end-offset)
	for _, b := range all[offset:end] {
		cp := *b
		out = append(out, &cp)
	}
	return out, total, nil
}

// ── Borradores ───────────────────────────────────────────────────────────────

// DraftRepo borradores en memoria.
type DraftRepo struct{ v view }

// ReplaceAll sustituye todas las filas.
func (r DraftRepo) ReplaceAll(ctx context.Context, rows []*entity.DraftRow) error {
	defer r.v.lock()()
	out := make([]*entity.DraftRow, 0, len(rows))
	for _, row := range rows {
		cp := *row
		out = append(out, &cp)
	}
	r.v.s.state.drafts = out
	return nil
}

// List filas por posición.
func (r DraftRepo) List(ctx context.Context) ([]*entity.DraftRow, error) {
	defer r.v.lock()()
	out := make([]*entity.DraftRow, 0, len(r.v.s.state.drafts))
	for _, row := range r.v.s.state.drafts {
		cp := *row
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// DeleteAll vacía el borrador.
func (r DraftRepo) DeleteAll(ctx context.Context) error {
	defer r.v.lock()()
	r.v.s.state.drafts = nil
	return nil
}
