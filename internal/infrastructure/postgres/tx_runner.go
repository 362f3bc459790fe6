package postgres

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/concar-rcp/internal/application/registro"
	"github.com/jhoicas/concar-rcp/internal/domain"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
	"github.com/jhoicas/concar-rcp/pkg/logger"
)

var _ registro.SubmitTxRunner = (*TxRunner)(nil)

const (
	retryBaseDelay = 20 * time.Millisecond
	retryMaxDelay  = 500 * time.Millisecond
)

// txBeginner lo que el runner necesita del pool; *pgxpool.Pool lo cumple.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ txBeginner = (*pgxpool.Pool)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db         txBeginner
	maxRetries int
	baseDelay  time.Duration
	log        *logger.Logger
}

// NewTxRunner construye el runner. maxRetries es cuántas veces se repite una transacción
// SERIALIZABLE abortada por conflicto antes de rendirse.
func NewTxRunner(pool *pgxpool.Pool, maxRetries int, log *logger.Logger) *TxRunner {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if log == nil {
		log = logger.Nop()
	}
	return newTxRunner(pool, maxRetries, log.Named("tx"))
}

func newTxRunner(db txBeginner, maxRetries int, log *logger.Logger) *TxRunner {
	return &TxRunner{db: db, maxRetries: maxRetries, baseDelay: retryBaseDelay, log: log}
}

// RunSerializable inicia una transacción SERIALIZABLE, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los fallos de serialización, deadlocks y la carrera por crear el contador del
// día repiten fn desde cero; agotados los reintentos devuelve domain.ErrConflict.
func (r *TxRunner) RunSerializable(ctx context.Context, fn func(
	correlativeRepo repository.CorrelativeRepository,
	documentRepo repository.DocumentRepository,
	batchRepo repository.BatchRepository,
) error) error {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepBackoff(ctx, r.baseDelay, attempt); err != nil {
				return classify(err)
			}
		}
		err := r.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return classify(err)
		}
		lastErr = err
		r.log.Warn().Err(err).Int("intento", attempt+1).Msg("transacción serializable abortada, reintentando")
	}
	return fmt.Errorf("%w: %w", domain.ErrConflict, lastErr)
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(
	correlativeRepo repository.CorrelativeRepository,
	documentRepo repository.DocumentRepository,
	batchRepo repository.BatchRepository,
) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	correlativeRepo := NewCorrelativeRepository(tx)
	documentRepo := NewDocumentRepository(tx)
	batchRepo := NewBatchRepository(tx)

	if err := fn(correlativeRepo, documentRepo, batchRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// sleepBackoff espera base·2^(n-1) (tope retryMaxDelay) más un jitter aleatorio, o hasta que se cancele ctx.
func sleepBackoff(ctx context.Context, base time.Duration, attempt int) error {
	d := retryMaxDelay
	if attempt <= 16 && base<<(attempt-1) < retryMaxDelay {
		d = base << (attempt - 1)
	}
	if d > 0 {
		d += time.Duration(rand.Int63n(int64(d)))
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
