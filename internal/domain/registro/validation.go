// Package registro contiene las reglas de dominio del registro de documentos por lotes:
// normalización de importes y fechas del formulario y límites de cada campo.
package registro

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/concar-rcp/internal/domain"
	"github.com/jhoicas/concar-rcp/internal/domain/entity"
)

// AmountDecimals decimales con los que se guardan los importes.
const AmountDecimals = 4

// DateLayout formato de las fechas que envía el formulario (input type="date").
const DateLayout = "2006-01-02"

// Límites del importe en la columna de 15 del archivo posicional: "-9999999999.9999" no cabe,
// así que como mucho 10 dígitos enteros.
const (
	AmountWidth        = 15
	MaxAmountIntDigits = AmountWidth - AmountDecimals - 1
	minAmountExponent  = -32
)

// ErrAmountOutOfRange el importe no cabe en la columna del archivo posicional.
var ErrAmountOutOfRange = fmt.Errorf("importe excede %d caracteres con %d decimales", AmountWidth, AmountDecimals)

// ParseAmount interpreta el importe escrito en el formulario. Vacío o no numérico vale 0.
// Un importe que no cabe en la columna devuelve ErrAmountOutOfRange sin llegar a expandirlo
// (acepta notación científica, "1e99999999" tiene 9 bytes).
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsZero() {
		return decimal.Zero, nil
	}
	if !amountInRange(d) {
		return decimal.Zero, ErrAmountOutOfRange
	}
	return d.Round(AmountDecimals), nil
}

// amountInRange decide por coeficiente y exponente, sin formatear el número.
func amountInRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < minAmountExponent || exp > MaxAmountIntDigits {
		return false
	}
	return d.IsZero() || int64(d.NumDigits())+exp <= MaxAmountIntDigits
}

// ParseDate interpreta una fecha AAAA-MM-DD. Vacío devuelve nil sin error.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("fecha %q inválida, formato esperado AAAA-MM-DD", raw)
	}
	return &d, nil
}

// ValidateDocument comprueba los límites de longitud de cada campo. Ninguno es obligatorio:
// una fila vacía se guarda tal cual.
// row es la posición 1-based del documento en el lote.
func ValidateDocument(row int, d *entity.Document) []domain.FieldError {
	var errs []domain.FieldError
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"ruc_cliente", d.ClientTaxID, entity.MaxClientTaxIDLen},
		{"ruc_proveedor", d.ProviderTaxID, entity.MaxProviderTaxIDLen},
		{"tipo_documento", d.DocumentType, entity.MaxDocumentTypeLen},
		{"nro_documento", d.DocumentNumber, entity.MaxDocumentNumberLen},
		{"cod_interno_doc", d.InternalCode, entity.MaxInternalCodeLen},
		{"mon", d.Currency, entity.MaxCurrencyLen},
	}
	for _, c := range checks {
		if n := utf8.RuneCountInString(c.value); n > c.max {
			errs = append(errs, domain.FieldError{
				Row: row, Field: c.field,
				Message: fmt.Sprintf("máximo %d caracteres, se recibieron %d", c.max, n),
			})
		}
		if strings.ContainsAny(c.value, "\r\n|") {
			errs = append(errs, domain.FieldError{Row: row, Field: c.field, Message: "contiene caracteres no permitidos"})
		}
	}
	// Debe caber en la columna de 15 del archivo posicional; StringFixed sólo tras acotar el rango.
	if !amountInRange(d.Amount) || len(d.Amount.StringFixed(AmountDecimals)) > AmountWidth {
		errs = append(errs, domain.FieldError{Row: row, Field: "importe", Message: ErrAmountOutOfRange.Error()})
	}
	return errs
}

// TotalAmount suma los importes de los documentos.
func TotalAmount(docs []*entity.Document) decimal.Decimal {
	total := decimal.Zero
	for _, d := range docs {
		total = total.Add(d.Amount)
	}
	return total
}
