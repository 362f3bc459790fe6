package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Longitudes máximas de los campos de texto de un documento.
const (
	MaxClientTaxIDLen    = 11
	MaxProviderTaxIDLen  = 11
	MaxDocumentTypeLen   = 2
	MaxDocumentNumberLen = 25
	MaxInternalCodeLen   = 50
	MaxCurrencyLen       = 2
)

// Document representa un comprobante registrado (factura, boleta, nota) dentro de un lote.
// Una vez persistido no se modifica.
type Document struct {
	ID          int64     // identidad (BIGSERIAL); desempata el orden del historial
	Correlative int       // correlativo del lote en BatchDate
	BatchDate   time.Time // fecha del servidor al asignar el correlativo
	Filename    string    // RCP<fecha><correlativo>.txt

	ClientTaxID      string // RUC del cliente
	ProviderTaxID    string // RUC del proveedor
	DocumentType     string // tipo de documento (01 factura, 03 boleta, ...)
	DocumentNumber   string // serie-número
	InternalCode     string // código interno, opcional
	IssueDate        *time.Time
	DueDate          *time.Time
	ConfirmationDate *time.Time
	Amount           decimal.Decimal // 4 decimales
	Currency         string

	CreatedAt time.Time
}
