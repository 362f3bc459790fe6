package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch resumen de un envío: un correlativo del día, su archivo y los totales de sus documentos.
// Se crea en la misma transacción que los documentos y no se actualiza.
type Batch struct {
	ID            int64
	BatchDate     time.Time
	Correlative   int
	Filename      string
	DocumentCount int
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
}
