// Package pdf genera el reporte imprimible de un lote registrado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Registro de comprobantes │ Archivo + Correlativo   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: RUC cliente | RUC prov. | Tipo | Número | Emisión…  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES POR CLIENTE + TOTAL DEL LOTE                        │
//	│  FOOTER: QR con archivo|cantidad|total                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/concar-rcp/internal/application/registro"
	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	"github.com/jhoicas/concar-rcp/pkg/concar"
)

var _ registro.BatchPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeader  = &props.Color{Red: 220, Green: 230, Blue: 241}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa registro.BatchPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	company string
}

// NewMarotoPDFGenerator construye el generador. company aparece en la cabecera y como autor.
func NewMarotoPDFGenerator(company string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{company: company}
}

// GenerateBatchReport genera el PDF del lote y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateBatchReport(batch *entity.Batch, docs []*entity.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Lote "+batch.Filename, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.company, batch))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(docs)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(clientTotalRows(docs)...)
	m.AddRows(totalRow(batch))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(batch))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company string, batch *entity.Batch) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(company, "Registro de comprobantes"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Registro de comprobantes de pago para CONCAR", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(batch.Filename, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Correlativo %03d   |   Fecha %s", batch.Correlative, batch.BatchDate.Format("02/01/2006")), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Registrado: "+batch.CreatedAt.Format(time.DateTime), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("RUC cliente", 2, align.Left),
		h("RUC proveedor", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Número", 2, align.Left),
		h("Emisión", 1, align.Center),
		h("Vencimiento", 1, align.Center),
		h("Confirmación", 1, align.Center),
		h("Importe", 1, align.Right),
		h("Mon", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

func tableDetailRows(docs []*entity.Document) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	out := make([]core.Row, 0, len(docs))
	for _, d := range docs {
		out = append(out, row.New(6).Add(
			cell(d.ClientTaxID, 2, align.Left),
			cell(d.ProviderTaxID, 2, align.Left),
			cell(d.DocumentType, 1, align.Center),
			cell(d.DocumentNumber, 2, align.Left),
			cell(formatDate(d.IssueDate), 1, align.Center),
			cell(formatDate(d.DueDate), 1, align.Center),
			cell(formatDate(d.ConfirmationDate), 1, align.Center),
			cell(formatAmount(d.Amount), 1, align.Right),
			cell(d.Currency, 1, align.Center),
		))
	}
	return out
}

// clientTotalRows subtotales por RUC de cliente, en el mismo orden que el resumen por pipes.
func clientTotalRows(docs []*entity.Document) []core.Row {
	records := make([]concar.Record, 0, len(docs))
	for _, d := range docs {
		records = append(records, concar.Record{ClientTaxID: d.ClientTaxID, Amount: d.Amount})
	}
	totals := concar.SummarizeByClient(records)
	out := make([]core.Row, 0, len(totals))
	for _, t := range totals {
		out = append(out, row.New(5).Add(
			col.New(7),
			col.New(3).Add(text.New("Cliente "+t.ClientTaxID+":", props.Text{Size: 8, Align: align.Right, Right: 2})),
			col.New(2).Add(text.New(formatAmount(t.Total), props.Text{Size: 8, Align: align.Right, Right: 1})),
		))
	}
	return out
}

func totalRow(batch *entity.Batch) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1}
	labelProps, valueProps := bold, bold
	labelProps.Right, valueProps.Right = 2, 1
	return row.New(8).Add(
		col.New(7),
		col.New(3).Add(text.New(fmt.Sprintf("TOTAL (%d documentos):", batch.DocumentCount), labelProps)),
		col.New(2).Add(text.New(formatAmount(batch.TotalAmount), valueProps)),
	)
}

// footerRow QR con archivo|cantidad|total para cotejar el papel con el archivo importado.
func footerRow(batch *entity.Batch) core.Row {
	payload := strings.Join([]string{
		batch.Filename,
		fmt.Sprint(batch.DocumentCount),
		batch.TotalAmount.StringFixed(concar.AmountDecimals),
	}, "|")
	return row.New(30).Add(
		col.New(2).Add(code.NewQr(payload, props.Rect{Percent: 95, Center: true})),
		col.New(10).Add(
			text.New("Verificación del lote", props.Text{Style: fontstyle.Bold, Size: 8, Top: 4, Left: 3, Color: colorPrimary}),
			text.New(payload, props.Text{Size: 7, Top: 10, Left: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDate(d *time.Time) string {
	if d == nil {
		return "—"
	}
	return d.Format("02/01/2006")
}

// formatAmount importe con separador de miles y 4 decimales.
// Ej: 1234567.5 → "1,234,567.5000"
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(concar.AmountDecimals)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
