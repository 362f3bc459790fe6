package concar

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Anchos del formato posicional. El código interno del documento no viaja en el archivo.
const (
	WidthClientTaxID    = 11
	WidthProviderTaxID  = 11
	WidthDocumentType   = 2
	WidthDocumentNumber = 25
	WidthDate           = 10
	WidthAmount         = 15
	WidthCurrency       = 2

	// LineWidth ancho total de cada registro (sin el fin de línea).
	LineWidth = WidthClientTaxID + WidthProviderTaxID + WidthDocumentType + WidthDocumentNumber +
		3*WidthDate + WidthAmount + WidthCurrency

	// AmountDecimals decimales con los que se escriben los importes.
	AmountDecimals = 4

	dateLayout = "02/01/2006"
	lineEnd    = "\r\n"
)

var (
	// ErrFieldTooLong un campo excede el ancho de su columna; no se trunca.
	ErrFieldTooLong = errors.New("concar: campo excede el ancho de la columna")
	// ErrMalformedLine una línea no tiene el ancho o el contenido esperado.
	ErrMalformedLine = errors.New("concar: línea mal formada")
)

// Record una fila del archivo posicional.
type Record struct {
	ClientTaxID      string
	ProviderTaxID    string
	DocumentType     string
	DocumentNumber   string
	IssueDate        *time.Time
	DueDate          *time.Time
	ConfirmationDate *time.Time
	Amount           decimal.Decimal
	Currency         string
}

// EncodeFixedWidth genera el archivo posicional: una línea por documento terminada en CRLF.
// Los textos se alinean a la izquierda y el importe a la derecha, todos rellenos con espacios.
// Un campo más largo que su columna devuelve ErrFieldTooLong indicando fila y campo.
func EncodeFixedWidth(records []Record) (string, error) {
	var b strings.Builder
	b.Grow(len(records) * (LineWidth + len(lineEnd)))
	for i, r := range records {
		line, err := encodeLine(r)
		if err != nil {
			return "", fmt.Errorf("fila %d: %w", i+1, err)
		}
		b.WriteString(line)
		b.WriteString(lineEnd)
	}
	return b.String(), nil
}

func encodeLine(r Record) (string, error) {
	amount := r.Amount.StringFixed(AmountDecimals)
	fields := []struct {
		name  string
		value string
		width int
		right bool
	}{
		{"ruc_cliente", r.ClientTaxID, WidthClientTaxID, false},
		{"ruc_proveedor", r.ProviderTaxID, WidthProviderTaxID, false},
		{"tipo_documento", r.DocumentType, WidthDocumentType, false},
		{"nro_documento", r.DocumentNumber, WidthDocumentNumber, false},
		{"fecha_emision", formatDate(r.IssueDate), WidthDate, false},
		{"fecha_vencimiento", formatDate(r.DueDate), WidthDate, false},
		{"fecha_confirmacion", formatDate(r.ConfirmationDate), WidthDate, false},
		{"importe", amount, WidthAmount, true},
		{"mon", r.Currency, WidthCurrency, false},
	}
	var b strings.Builder
	b.Grow(LineWidth)
	for _, f := range fields {
		if strings.ContainsAny(f.value, "\r\n") {
			return "", fmt.Errorf("%w: %s contiene saltos de línea", ErrMalformedLine, f.name)
		}
		n := utf8.RuneCountInString(f.value)
		if n > f.width {
			return "", fmt.Errorf("%w: %s tiene %d caracteres (máximo %d)", ErrFieldTooLong, f.name, n, f.width)
		}
		pad := strings.Repeat(" ", f.width-n)
		if f.right {
			b.WriteString(pad)
			b.WriteString(f.value)
		} else {
			b.WriteString(f.value)
			b.WriteString(pad)
		}
	}
	return b.String(), nil
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(dateLayout)
}

// ParseFixedWidth lee un archivo posicional cortando por columnas. Acepta CRLF o LF y
// una última línea vacía; los textos se devuelven sin el relleno de espacios.
func ParseFixedWidth(text string) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 4*LineWidth), 64*LineWidth)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		r, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", lineNo, err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return out, nil
}

func parseLine(line string) (Record, error) {
	cols := []rune(line)
	if len(cols) != LineWidth {
		return Record{}, fmt.Errorf("%w: %d caracteres (se esperaban %d)", ErrMalformedLine, len(cols), LineWidth)
	}
	pos := 0
	next := func(width int) string {
		s := string(cols[pos : pos+width])
		pos += width
		return s
	}

	var r Record
	var err error
	r.ClientTaxID = strings.TrimRight(next(WidthClientTaxID), " ")
	r.ProviderTaxID = strings.TrimRight(next(WidthProviderTaxID), " ")
	r.DocumentType = strings.TrimRight(next(WidthDocumentType), " ")
	r.DocumentNumber = strings.TrimRight(next(WidthDocumentNumber), " ")
	if r.IssueDate, err = parseDate(next(WidthDate)); err != nil {
		return Record{}, err
	}
	if r.DueDate, err = parseDate(next(WidthDate)); err != nil {
		return Record{}, err
	}
	if r.ConfirmationDate, err = parseDate(next(WidthDate)); err != nil {
		return Record{}, err
	}
	amount := strings.TrimLeft(next(WidthAmount), " ")
	// Sólo notación decimal simple: "1e99999999" cabe en la columna pero no en memoria al formatearlo.
	if strings.Trim(amount, "-.0123456789") != "" {
		return Record{}, fmt.Errorf("%w: importe %q", ErrMalformedLine, amount)
	}
	if r.Amount, err = decimal.NewFromString(amount); err != nil {
		return Record{}, fmt.Errorf("%w: importe %q", ErrMalformedLine, amount)
	}
	r.Currency = strings.TrimRight(next(WidthCurrency), " ")
	return r, nil
}

func parseDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", ErrMalformedLine, s)
	}
	return &d, nil
}
