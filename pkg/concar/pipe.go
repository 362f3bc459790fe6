package concar

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ClientTotal importe acumulado de un RUC de cliente.
type ClientTotal struct {
	ClientTaxID string
	Total       decimal.Decimal
}

// SummarizeByClient agrupa los importes por RUC de cliente respetando el orden de primera aparición.
func SummarizeByClient(records []Record) []ClientTotal {
	index := make(map[string]int, len(records))
	var out []ClientTotal
	for _, r := range records {
		i, ok := index[r.ClientTaxID]
		if !ok {
			index[r.ClientTaxID] = len(out)
			out = append(out, ClientTotal{ClientTaxID: r.ClientTaxID, Total: r.Amount})
			continue
		}
		out[i].Total = out[i].Total.Add(r.Amount)
	}
	return out
}

// EncodePipeSummary genera el resumen "ruc|importe_total" (4 decimales), una línea por cliente
// separadas por LF y sin salto final.
func EncodePipeSummary(records []Record) string {
	totals := SummarizeByClient(records)
	lines := make([]string, 0, len(totals))
	for _, t := range totals {
		lines = append(lines, t.ClientTaxID+"|"+t.Total.StringFixed(AmountDecimals))
	}
	return strings.Join(lines, "\n")
}
