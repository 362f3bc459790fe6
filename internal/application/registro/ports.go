package registro

import (
	"context"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
)

// SubmitTxRunner ejecuta fn dentro de una transacción SERIALIZABLE con repositorios atados a ella.
// Si la transacción no puede serializarse, la implementación puede reintentar fn desde cero;
// fn no debe tener efectos fuera de los repositorios recibidos.
type SubmitTxRunner interface {
	RunSerializable(ctx context.Context, fn func(
		correlativeRepo repository.CorrelativeRepository,
		documentRepo repository.DocumentRepository,
		batchRepo repository.BatchRepository,
	) error) error
}

// BatchPDFGenerator genera el reporte PDF de un lote persistido.
type BatchPDFGenerator interface {
	GenerateBatchReport(batch *entity.Batch, docs []*entity.Document) ([]byte, error)
}
