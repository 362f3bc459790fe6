package registro_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/application/registro"
	"github.com/jhoicas/concar-rcp/internal/application/registro/registrotest"
	"github.com/jhoicas/concar-rcp/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var lima = mustLocation("America/Lima")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// fixedClock 2025-01-15 10:30 en Lima.
func fixedClock() time.Time {
	return time.Date(2025, time.January, 15, 10, 30, 0, 0, lima)
}

func newSubmit(store *registrotest.Store) *registro.SubmitBatchUseCase {
	return registro.NewSubmitBatchUseCase(store, lima, nil).WithClock(fixedClock)
}

func exampleDocs() []dto.DocumentInput {
	return []dto.DocumentInput{
		{
			RucCliente: "20100000001", RucProveedor: "20100000002", TipoDocumento: "01",
			NroDocumento: "F001-1", FechaEmision: "2025-01-10", Importe: "150.5", Mon: "01",
		},
		{
			RucCliente: "20100000001", RucProveedor: "20100000003", TipoDocumento: "03",
			NroDocumento: "B001-7", Importe: "49.5", Mon: "01",
		},
	}
}

func submit(t *testing.T, uc *registro.SubmitBatchUseCase, docs []dto.DocumentInput) *dto.SubmitDocumentsResponse {
	t.Helper()
	resp, err := uc.Submit(context.Background(), dto.SubmitDocumentsRequest{Documentos: docs})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación de correlativos
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_EjemploDosDocumentos(t *testing.T) {
	store := registrotest.NewStore()
	resp := submit(t, newSubmit(store), exampleDocs())

	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Correlativo)
	assert.Equal(t, "RCP20250115001.txt", resp.NombreArchivo)
	assert.Equal(t, "2025-01-15", resp.Fecha)
	assert.Equal(t, 2, resp.Cantidad)
	assert.Equal(t, "200.0000", resp.ImporteTotal)
	assert.Equal(t, "Se guardaron 2 documentos con correlativo 1", resp.Mensaje)

	batch, err := store.Batches().GetByFilename(context.Background(), "RCP20250115001.txt")
	require.NoError(t, err)
	require.NotNil(t, batch)
	assert.Equal(t, 2, batch.DocumentCount)
	assert.Equal(t, "200.0000", batch.TotalAmount.StringFixed(4))

	docs, err := store.Documents().ListByFilename(context.Background(), "RCP20250115001.txt")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	for _, d := range docs {
		assert.Equal(t, 1, d.Correlative)
		assert.Equal(t, "RCP20250115001.txt", d.Filename)
	}
}

func TestSubmit_SecuencialAsigna123(t *testing.T) {
	uc := newSubmit(registrotest.NewStore())
	for want := 1; want <= 3; want++ {
		resp := submit(t, uc, exampleDocs())
		assert.Equal(t, want, resp.Correlativo)
		assert.Equal(t, fmt.Sprintf("RCP20250115%03d.txt", want), resp.NombreArchivo)
	}
}

func TestSubmit_NuevoDiaReiniciaEn1(t *testing.T) {
	store := registrotest.NewStore()
	day := fixedClock()
	uc := registro.NewSubmitBatchUseCase(store, lima, nil).WithClock(func() time.Time { return day })

	submit(t, uc, exampleDocs())
	submit(t, uc, exampleDocs())
	day = day.AddDate(0, 0, 1)
	resp := submit(t, uc, exampleDocs())

	assert.Equal(t, 1, resp.Correlativo)
	assert.Equal(t, "RCP20250116001.txt", resp.NombreArchivo)
}

func TestSubmit_FechaSegunZonaConfigurada(t *testing.T) {
	// 2025-01-16 03:00 UTC todavía es 15 de enero en Lima (UTC-5).
	uc := registro.NewSubmitBatchUseCase(registrotest.NewStore(), lima, nil).
		WithClock(func() time.Time { return time.Date(2025, time.January, 16, 3, 0, 0, 0, time.UTC) })
	resp := submit(t, uc, exampleDocs())
	assert.Equal(t, "RCP20250115001.txt", resp.NombreArchivo)
}

func TestSubmit_IgnoraFechaCliente(t *testing.T) {
	uc := newSubmit(registrotest.NewStore())
	resp, err := uc.Submit(context.Background(), dto.SubmitDocumentsRequest{
		Documentos: exampleDocs(), FechaCliente: "1999-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "RCP20250115001.txt", resp.NombreArchivo)
}

func TestSubmit_ConcurrenteCorrelativosContiguos(t *testing.T) {
	const n = 25
	uc := newSubmit(registrotest.NewStore())

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		got []int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := uc.Submit(context.Background(), dto.SubmitDocumentsRequest{Documentos: exampleDocs()})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			got = append(got, resp.Correlativo)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, got, n)
	sort.Ints(got)
	for i, c := range got {
		assert.Equal(t, i+1, c)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_FalloEnDocumentosNoAvanzaContador(t *testing.T) {
	store := registrotest.NewStore()
	uc := newSubmit(store)
	submit(t, uc, exampleDocs())

	store.FailOnDocument = "B001-7"
	_, err := uc.Submit(context.Background(), dto.SubmitDocumentsRequest{Documentos: exampleDocs()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, registrotest.ErrInjected))

	counter, err := store.Correlatives().Current(context.Background(), time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, counter)
	assert.Equal(t, 1, counter.LastValue)

	_, total, err := store.Documents().List(context.Background(), registroFilter())
	require.NoError(t, err)
	assert.Equal(t, 2, total, "los documentos del intento fallido no deben quedar")

	store.FailOnDocument = ""
	resp := submit(t, uc, exampleDocs())
	assert.Equal(t, 2, resp.Correlativo, "el correlativo fallido no se consume")
}

func TestSubmit_FalloEnResumenDeshaceTodo(t *testing.T) {
	store := registrotest.NewStore()
	store.FailOnBatch = true
	_, err := newSubmit(store).Submit(context.Background(), dto.SubmitDocumentsRequest{Documentos: exampleDocs()})
	require.Error(t, err)

	counter, err := store.Correlatives().Current(context.Background(), time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, counter)

	docs, err := store.Documents().ListByFilename(context.Background(), "RCP20250115001.txt")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_LoteVacioEsInvalido(t *testing.T) {
	store := registrotest.NewStore()
	_, err := newSubmit(store).Submit(context.Background(), dto.SubmitDocumentsRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	counter, err := store.Correlatives().Current(context.Background(), time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, counter, "un lote vacío no consume correlativo")
}

func TestSubmit_ErroresPorFila(t *testing.T) {
	docs := exampleDocs()
	docs[1].Importe = "1e99999999"
	docs[1].FechaEmision = "15/01/2025"
	docs[0].NroDocumento = "F001-000000000000000000000001"

	_, err := newSubmit(registrotest.NewStore()).Submit(context.Background(), dto.SubmitDocumentsRequest{Documentos: docs})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]int{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Row
	}
	assert.Equal(t, 1, fields["nro_documento"])
	assert.Equal(t, 2, fields["importe"])
	assert.Equal(t, 2, fields["fecha_emision"])
}

func TestSubmit_ImporteEnNotacionCientificaGiganteSeRechazaRapido(t *testing.T) {
	store := registrotest.NewStore()
	docs := exampleDocs()
	docs[0].Importe = "1e99999999"

	start := time.Now()
	_, err := newSubmit(store).Submit(context.Background(), dto.SubmitDocumentsRequest{Documentos: docs})
	assert.Less(t, time.Since(start), time.Second)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	counter, err := store.Correlatives().Current(context.Background(), time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, counter, "un lote rechazado no consume correlativo")
}

func TestSubmit_FilaSinRucClienteSeGuarda(t *testing.T) {
	store := registrotest.NewStore()
	docs := exampleDocs()
	docs[1].RucCliente = ""

	resp := submit(t, newSubmit(store), docs)
	assert.Equal(t, 1, resp.Correlativo)
	assert.Equal(t, 2, resp.Cantidad)
}

func TestSubmit_ImporteInvalidoValeCero(t *testing.T) {
	docs := exampleDocs()
	docs[0].Importe = "abc"
	docs[1].Importe = ""
	resp := submit(t, newSubmit(registrotest.NewStore()), docs)
	assert.Equal(t, "0.0000", resp.ImporteTotal)
}
