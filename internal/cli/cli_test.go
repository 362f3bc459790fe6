package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/concar-rcp/pkg/concar"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func writeBatchFile(t *testing.T, name string, records []concar.Record, charset string) string {
	t.Helper()
	text, err := concar.EncodeFixedWidth(records)
	require.NoError(t, err)
	data, err := concar.EncodeCharset(text, charset)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func sampleRecords() []concar.Record {
	issued := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	return []concar.Record{
		{ClientTaxID: "20100000001", ProviderTaxID: "20100000002", DocumentType: "01",
			DocumentNumber: "F001-1", IssueDate: &issued, Amount: decimal.RequireFromString("150.5"), Currency: "01"},
		{ClientTaxID: "20100000001", ProviderTaxID: "20100000003", DocumentType: "03",
			DocumentNumber: "PEÑA-7", Amount: decimal.RequireFromString("49.5"), Currency: "01"},
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// ──────────────────────────────────────────────────────────────────────────────
// verificar
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyFile_ArchivoValido(t *testing.T) {
	path := writeBatchFile(t, "RCP20250115007.txt", sampleRecords(), concar.CharsetWindows1252)

	res, err := VerifyFile(path, concar.CharsetWindows1252)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Records)
	assert.Equal(t, "200.0000", res.Total.StringFixed(4))
	assert.Equal(t, 7, res.Correlative)
	require.Len(t, res.Clients, 1)
	assert.Equal(t, "20100000001", res.Clients[0].ClientTaxID)
	assert.Equal(t, []string{"20100000001", "20100000002", "20100000003"}, res.InvalidTaxIDs)
}

func TestVerifyCommand_Salida(t *testing.T) {
	path := writeBatchFile(t, "RCP20250115001.txt", sampleRecords(), concar.CharsetWindows1252)

	out, err := execute(t, "verificar", "-v", path)
	require.NoError(t, err)
	assert.Equal(t, "correlativo: 1\nregistros: 2\ntotal: 200.0000\n  20100000001|200.0000\n", out)
}

func TestVerifyCommand_NombreLibre(t *testing.T) {
	path := writeBatchFile(t, "lote.txt", sampleRecords(), concar.CharsetUTF8)

	out, err := execute(t, "verificar", "--charset", "utf-8", path)
	require.NoError(t, err)
	assert.Equal(t, "registros: 2\ntotal: 200.0000\n", out)
}

func TestVerifyCommand_LineaMalFormada(t *testing.T) {
	path := filepath.Join(t.TempDir(), "RCP20250115001.txt")
	require.NoError(t, os.WriteFile(path, []byte("20100000001 corto\r\n"), 0o644))

	_, err := execute(t, "verificar", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, concar.ErrMalformedLine)
}

func TestVerifyCommand_SinArgumentos(t *testing.T) {
	_, err := execute(t, "verificar")
	assert.Error(t, err)
}

func TestVerifyCommand_CharsetNoSoportado(t *testing.T) {
	path := writeBatchFile(t, "RCP20250115001.txt", sampleRecords(), concar.CharsetUTF8)
	_, err := execute(t, "verificar", "--charset", "ebcdic", path)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// raíz
// ──────────────────────────────────────────────────────────────────────────────

func TestRootCommand_Subcomandos(t *testing.T) {
	cmd := NewRootCommand()
	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"migrar", "exportar", "verificar"})
}

func TestExportCommand_ArchivoObligatorio(t *testing.T) {
	_, err := execute(t, "exportar")
	assert.Error(t, err)
}
