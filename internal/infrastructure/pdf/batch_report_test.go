package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/concar-rcp/internal/domain/entity"
)

func TestGenerateBatchReport_DevuelvePDF(t *testing.T) {
	day := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	issue := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	batch := &entity.Batch{
		ID: 1, BatchDate: day, Correlative: 7, Filename: "RCP20250115007.txt",
		DocumentCount: 2, TotalAmount: decimal.RequireFromString("200"),
		CreatedAt: day.Add(10 * time.Hour),
	}
	docs := []*entity.Document{
		{ClientTaxID: "20100000001", ProviderTaxID: "20100000002", DocumentType: "01",
			DocumentNumber: "F001-1", IssueDate: &issue, Amount: decimal.RequireFromString("150.5"), Currency: "01"},
		{ClientTaxID: "20100000001", DocumentType: "03", DocumentNumber: "B001-7",
			Amount: decimal.RequireFromString("49.5"), Currency: "01"},
	}

	out, err := NewMarotoPDFGenerator("Saturno SAC").GenerateBatchReport(batch, docs)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe comenzar con la firma PDF")
}

func TestGenerateBatchReport_LoteVacio(t *testing.T) {
	batch := &entity.Batch{Filename: "RCP20250115001.txt", Correlative: 1, BatchDate: time.Now()}
	out, err := NewMarotoPDFGenerator("").GenerateBatchReport(batch, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":            "0.0000",
		"150.5":        "150.5000",
		"1234":         "1,234.0000",
		"1234567.1234": "1,234,567.1234",
		"-98765.4":     "-98,765.4000",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatAmount(decimal.RequireFromString(in)), in)
	}
}
