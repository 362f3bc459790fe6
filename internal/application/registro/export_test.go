package registro_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/application/registro"
	"github.com/jhoicas/concar-rcp/internal/application/registro/registrotest"
	"github.com/jhoicas/concar-rcp/internal/domain"
	"github.com/jhoicas/concar-rcp/internal/domain/entity"
	"github.com/jhoicas/concar-rcp/pkg/concar"
)

type stubPDF struct {
	batch *entity.Batch
	docs  []*entity.Document
}

func (s *stubPDF) GenerateBatchReport(batch *entity.Batch, docs []*entity.Document) ([]byte, error) {
	s.batch, s.docs = batch, docs
	return []byte("%PDF-stub"), nil
}

func exportFixture(t *testing.T, charset string) (*registro.ExportUseCase, *stubPDF) {
	t.Helper()
	store := registrotest.NewStore()
	docs := exampleDocs()
	docs[0].NroDocumento = "F001-Ñ1"
	submit(t, newSubmit(store), docs)
	pdf := &stubPDF{}
	return registro.NewExportUseCase(store.Documents(), store.Batches(), pdf, charset), pdf
}

func TestExport_ArchivoPosicional(t *testing.T) {
	uc, _ := exportFixture(t, concar.CharsetUTF8)
	file, err := uc.Export(context.Background(), "RCP20250115001.txt", registro.FormatFixedWidth)
	require.NoError(t, err)

	assert.Equal(t, "RCP20250115001.txt", file.Name)
	assert.Equal(t, "text/plain; charset=utf-8", file.ContentType)
	records, err := concar.ParseFixedWidth(string(file.Data))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "F001-Ñ1", records[0].DocumentNumber)
	assert.True(t, strings.HasSuffix(string(file.Data), "\r\n"))
}

func TestExport_FormatoPorDefectoEsFijo(t *testing.T) {
	uc, _ := exportFixture(t, concar.CharsetUTF8)
	file, err := uc.Export(context.Background(), "RCP20250115001.txt", "")
	require.NoError(t, err)
	assert.Equal(t, "RCP20250115001.txt", file.Name)
}

func TestExport_Windows1252(t *testing.T) {
	uc, _ := exportFixture(t, concar.CharsetWindows1252)
	file, err := uc.Export(context.Background(), "RCP20250115001.txt", registro.FormatFixedWidth)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(file.Data), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	// Ñ ocupa un byte en windows-1252: las columnas no se desplazan.
	assert.Len(t, lines[0], concar.LineWidth)
	assert.Contains(t, lines[0], "F001-\xd11")
}

func TestExport_ResumenPorCliente(t *testing.T) {
	uc, _ := exportFixture(t, concar.CharsetUTF8)
	file, err := uc.Export(context.Background(), "RCP20250115001.txt", registro.FormatSummary)
	require.NoError(t, err)
	assert.Equal(t, "RCP20250115001-resumen.txt", file.Name)
	assert.Equal(t, "20100000001|200.0000", string(file.Data))
}

func TestExport_PDF(t *testing.T) {
	uc, pdf := exportFixture(t, concar.CharsetUTF8)
	file, err := uc.Export(context.Background(), "RCP20250115001.txt", "PDF")
	require.NoError(t, err)
	assert.Equal(t, "RCP20250115001.pdf", file.Name)
	assert.Equal(t, "application/pdf", file.ContentType)
	require.NotNil(t, pdf.batch)
	assert.Equal(t, 1, pdf.batch.Correlative)
	assert.Len(t, pdf.docs, 2)
}

func TestExport_Errores(t *testing.T) {
	uc, _ := exportFixture(t, concar.CharsetUTF8)

	_, err := uc.Export(context.Background(), "RCP20250115001.txt", "xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Export(context.Background(), "RCP20250115099.txt", registro.FormatFixedWidth)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDrafts_GuardarCargarLimpiar(t *testing.T) {
	store := registrotest.NewStore()
	uc := registro.NewDraftUseCase(store.Drafts())
	ctx := context.Background()

	saved, err := uc.Save(ctx, dto.SaveDraftsRequest{Filas: []dto.DraftRowDTO{
		{ID: "fila-a", RucCliente: "2010", Importe: "abc"},
		{RucCliente: "20100000001", FechaEmision: "2025-01"},
	}})
	require.NoError(t, err)
	require.Len(t, saved.Filas, 2)
	assert.Equal(t, "fila-a", saved.Filas[0].ID)
	assert.NotEmpty(t, saved.Filas[1].ID, "las filas nuevas reciben id")
	assert.NotNil(t, saved.UpdatedAt)

	loaded, err := uc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.Filas, loaded.Filas, "el texto se conserva tal cual")

	_, err = uc.Save(ctx, dto.SaveDraftsRequest{Filas: []dto.DraftRowDTO{{ID: "x"}, {ID: "x"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.Clear(ctx))
	loaded, err = uc.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Filas)
	assert.Nil(t, loaded.UpdatedAt)
}
