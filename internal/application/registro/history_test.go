package registro_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/application/registro"
	"github.com/jhoicas/concar-rcp/internal/application/registro/registrotest"
	"github.com/jhoicas/concar-rcp/internal/domain"
	"github.com/jhoicas/concar-rcp/internal/domain/repository"
)

func registroFilter() repository.DocumentFilter {
	return repository.DocumentFilter{Limit: dto.MaxLimit}
}

func manyDocs(n int) []dto.DocumentInput {
	out := make([]dto.DocumentInput, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, dto.DocumentInput{
			RucCliente: "20100000001", TipoDocumento: "01",
			NroDocumento: fmt.Sprintf("F001-%d", i+1), Importe: "1", Mon: "01",
		})
	}
	return out
}

func TestListDocuments_Paginacion120(t *testing.T) {
	store := registrotest.NewStore()
	submit(t, newSubmit(store), manyDocs(120))
	history := registro.NewHistoryUseCase(store.Documents(), store.Batches(), lima)

	seen := map[int64]bool{}
	sizes := []int{}
	for offset := 0; offset < 150; offset += 50 {
		page, err := history.ListDocuments(context.Background(), dto.HistoryQuery{
			PageRequest: dto.PageRequest{Limit: 50, Offset: offset},
		})
		require.NoError(t, err)
		assert.Equal(t, 120, page.Total)
		sizes = append(sizes, len(page.Documentos))
		for _, d := range page.Documentos {
			assert.False(t, seen[d.ID], "documento %d repetido", d.ID)
			seen[d.ID] = true
		}
	}
	assert.Equal(t, []int{50, 50, 20}, sizes)
	assert.Len(t, seen, 120)
}

func TestListDocuments_MasRecientePrimero(t *testing.T) {
	store := registrotest.NewStore()
	now := fixedClock()
	store.Now = func() time.Time { return now }
	uc := newSubmit(store)

	submit(t, uc, exampleDocs())
	now = now.Add(time.Minute)
	submit(t, uc, exampleDocs())

	page, err := registro.NewHistoryUseCase(store.Documents(), store.Batches(), lima).
		ListDocuments(context.Background(), dto.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, page.Documentos, 4)
	assert.Equal(t, 2, page.Documentos[0].Correlativo)
	assert.Equal(t, 1, page.Documentos[3].Correlativo)
	assert.Greater(t, page.Documentos[0].ID, page.Documentos[1].ID)
	assert.Equal(t, dto.DefaultLimit, page.Limit)
}

func TestListDocuments_FiltroPorFechaInclusivo(t *testing.T) {
	store := registrotest.NewStore()
	now := time.Date(2025, time.January, 14, 23, 0, 0, 0, lima)
	store.Now = func() time.Time { return now }
	uc := newSubmit(store)

	submit(t, uc, manyDocs(1)) // 14 en Lima
	now = time.Date(2025, time.January, 15, 23, 59, 0, 0, lima)
	submit(t, uc, manyDocs(2)) // 15 en Lima (ya 16 en UTC)
	now = time.Date(2025, time.January, 16, 0, 0, 0, 0, lima)
	submit(t, uc, manyDocs(3)) // 16 en Lima

	history := registro.NewHistoryUseCase(store.Documents(), store.Batches(), lima)
	page, err := history.ListDocuments(context.Background(), dto.HistoryQuery{FechaDesde: "2025-01-15", FechaHasta: "2025-01-15"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	page, err = history.ListDocuments(context.Background(), dto.HistoryQuery{FechaDesde: "2025-01-15"})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)

	page, err = history.ListDocuments(context.Background(), dto.HistoryQuery{FechaHasta: "2025-01-14"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestListDocuments_FiltrosInvalidos(t *testing.T) {
	history := registro.NewHistoryUseCase(registrotest.NewStore().Documents(), nil, lima)

	_, err := history.ListDocuments(context.Background(), dto.HistoryQuery{FechaDesde: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = history.ListDocuments(context.Background(), dto.HistoryQuery{FechaDesde: "2025-02-01", FechaHasta: "2025-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListDocuments_LimiteMaximo(t *testing.T) {
	history := registro.NewHistoryUseCase(registrotest.NewStore().Documents(), nil, lima)
	page, err := history.ListDocuments(context.Background(), dto.HistoryQuery{PageRequest: dto.PageRequest{Limit: 10000, Offset: -5}})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxLimit, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Empty(t, page.Documentos)
}

func TestListBatches_YGetBatch(t *testing.T) {
	store := registrotest.NewStore()
	now := fixedClock()
	store.Now = func() time.Time { return now }
	uc := newSubmit(store)
	submit(t, uc, exampleDocs())
	now = now.Add(time.Second)
	submit(t, uc, manyDocs(3))

	history := registro.NewHistoryUseCase(store.Documents(), store.Batches(), lima)
	page, err := history.ListBatches(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Lotes, 2)
	assert.Equal(t, "RCP20250115002.txt", page.Lotes[0].NombreArchivo)
	assert.Equal(t, 3, page.Lotes[0].CantidadRegistros)
	assert.Equal(t, "3.0000", page.Lotes[0].ImporteTotal)

	detail, err := history.GetBatch(context.Background(), "RCP20250115001.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Correlativo)
	require.Len(t, detail.Documentos, 2)
	assert.Equal(t, "F001-1", detail.Documentos[0].NroDocumento)
	assert.Equal(t, "2025-01-10", *detail.Documentos[0].FechaEmision)
	assert.Nil(t, detail.Documentos[1].FechaEmision)
	assert.Equal(t, "150.5000", detail.Documentos[0].Importe)
}

func TestGetBatch_NoExiste(t *testing.T) {
	store := registrotest.NewStore()
	history := registro.NewHistoryUseCase(store.Documents(), store.Batches(), lima)

	_, err := history.GetBatch(context.Background(), "RCP20250115009.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = history.GetBatch(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
