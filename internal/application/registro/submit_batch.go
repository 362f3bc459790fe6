package registro

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/domain"
	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	domregistro "github.com/jhoicas/concar-rcp/internal/domain/registro"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
	"github.com/jhoicas/concar-rcp/pkg/concar"
	"github.com/jhoicas/concar-rcp/pkg/logger"
)

// SubmitResult resultado de un envío confirmado.
type SubmitResult struct {
	BatchDate   time.Time
	Correlative int
	Filename    string
	Count       int
	Total       decimal.Decimal
}

// SubmitBatchUseCase asigna el correlativo del día a un lote de documentos y lo persiste
// junto con su fila de resumen, todo en una única transacción SERIALIZABLE.
type SubmitBatchUseCase struct {
	txRunner SubmitTxRunner
	location *time.Location
	now      func() time.Time
	log      *logger.Logger
}

// NewSubmitBatchUseCase construye el caso de uso. location define qué es "hoy" para el contador.
func NewSubmitBatchUseCase(txRunner SubmitTxRunner, location *time.Location, log *logger.Logger) *SubmitBatchUseCase {
	if location == nil {
		location = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SubmitBatchUseCase{
		txRunner: txRunner,
		location: location,
		now:      time.Now,
		log:      log.Named("submit"),
	}
}

// WithClock reemplaza el reloj del servidor (tests).
func (uc *SubmitBatchUseCase) WithClock(now func() time.Time) *SubmitBatchUseCase {
	uc.now = now
	return uc
}

// today fecha calendario actual en la zona configurada, normalizada a medianoche UTC.
func (uc *SubmitBatchUseCase) today() time.Time {
	t := uc.now().In(uc.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Submit valida el lote completo y, si no hay errores, ejecuta la transacción:
// bloquear contador → asignar correlativo → insertar documentos → insertar resumen → commit.
// Cualquier fallo deshace todo; el contador no avanza.
func (uc *SubmitBatchUseCase) Submit(ctx context.Context, req dto.SubmitDocumentsRequest) (*dto.SubmitDocumentsResponse, error) {
	res, err := uc.SubmitDocuments(ctx, req.Documentos)
	if err != nil {
		return nil, err
	}
	return &dto.SubmitDocumentsResponse{
		Success:       true,
		Correlativo:   res.Correlative,
		NombreArchivo: res.Filename,
		Fecha:         res.BatchDate.Format(domregistro.DateLayout),
		Cantidad:      res.Count,
		ImporteTotal:  res.Total.StringFixed(domregistro.AmountDecimals),
		Mensaje:       fmt.Sprintf("Se guardaron %d documentos con correlativo %d", res.Count, res.Correlative),
	}, nil
}

// SubmitDocuments es Submit sin la capa de presentación.
func (uc *SubmitBatchUseCase) SubmitDocuments(ctx context.Context, inputs []dto.DocumentInput) (*SubmitResult, error) {
	if len(inputs) == 0 {
		return nil, domain.NewValidationError(domain.FieldError{
			Field: "documentos", Message: "debe enviar al menos un documento",
		})
	}

	docs := make([]*entity.Document, 0, len(inputs))
	var fieldErrs []domain.FieldError
	for i, in := range inputs {
		doc, errs := toDocument(i+1, in)
		fieldErrs = append(fieldErrs, errs...)
		docs = append(docs, doc)
	}
	if len(fieldErrs) > 0 {
		return nil, domain.NewValidationError(fieldErrs...)
	}
	total := domregistro.TotalAmount(docs)

	var (
		result   *SubmitResult
		attempts int
	)
	err := uc.txRunner.RunSerializable(ctx, func(
		correlativeRepo repository.CorrelativeRepository,
		documentRepo repository.DocumentRepository,
		batchRepo repository.BatchRepository,
	) error {
		attempts++
		today := uc.today()

		correlative, err := correlativeRepo.Next(ctx, today)
		if err != nil {
			return fmt.Errorf("asignar correlativo: %w", err)
		}
		filename := concar.Filename(today, correlative)

		for _, d := range docs {
			d.Correlative = correlative
			d.BatchDate = today
			d.Filename = filename
		}
		if err := documentRepo.CreateMany(ctx, docs); err != nil {
			return fmt.Errorf("guardar documentos: %w", err)
		}

		batch := &entity.Batch{
			BatchDate:     today,
			Correlative:   correlative,
			Filename:      filename,
			DocumentCount: len(docs),
			TotalAmount:   total,
		}
		if err := batchRepo.Create(ctx, batch); err != nil {
			return fmt.Errorf("guardar resumen: %w", err)
		}

		result = &SubmitResult{
			BatchDate:   today,
			Correlative: correlative,
			Filename:    filename,
			Count:       len(docs),
			Total:       total,
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Int("documentos", len(docs)).Int("intentos", attempts).Msg("envío de lote fallido")
		return nil, err
	}

	uc.log.Info().
		Int("correlativo", result.Correlative).
		Str("archivo", result.Filename).
		Int("documentos", result.Count).
		Str("importe_total", result.Total.StringFixed(domregistro.AmountDecimals)).
		Int("intentos", attempts).
		Msg("lote registrado")
	return result, nil
}
