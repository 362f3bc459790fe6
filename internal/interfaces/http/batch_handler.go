package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/application/registro"
)

// BatchHandler historial de lotes y descarga de sus archivos.
type BatchHandler struct {
	historyUC *registro.HistoryUseCase
	exportUC  *registro.ExportUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(historyUC *registro.HistoryUseCase, exportUC *registro.ExportUseCase) *BatchHandler {
	return &BatchHandler{historyUC: historyUC, exportUC: exportUC}
}

// List godoc
// @Summary      Historial de lotes
// @Tags         lotes
// @Produce      json
// @Param        limit   query     int  false  "Límite (máx. 500)"  default(100)
// @Param        offset  query     int  false  "Offset"             default(0)
// @Success      200     {object}  dto.BatchPage
// @Router       /api/lotes [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", dto.DefaultLimit), Offset: c.QueryInt("offset", 0)}
	out, err := h.historyUC.ListBatches(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de un lote
// @Tags         lotes
// @Produce      json
// @Param        archivo  path      string  true  "Nombre del archivo, ej. RCP20250115007.txt"
// @Success      200      {object}  dto.BatchDetailResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/lotes/{archivo} [get]
func (h *BatchHandler) Get(c *fiber.Ctx) error {
	out, err := h.historyUC.GetBatch(c.Context(), c.Params("archivo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadFixedWidth godoc
// @Summary      Descargar archivo posicional CONCAR
// @Tags         lotes
// @Produce      plain
// @Param        archivo  path  string  true  "Nombre del archivo"
// @Success      200      {file}  file
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/lotes/{archivo}/txt [get]
func (h *BatchHandler) DownloadFixedWidth(c *fiber.Ctx) error {
	return h.download(c, registro.FormatFixedWidth)
}

// DownloadSummary godoc
// @Summary      Descargar resumen por cliente (ruc|importe)
// @Tags         lotes
// @Produce      plain
// @Param        archivo  path  string  true  "Nombre del archivo"
// @Success      200      {file}  file
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/lotes/{archivo}/resumen [get]
func (h *BatchHandler) DownloadSummary(c *fiber.Ctx) error {
	return h.download(c, registro.FormatSummary)
}

// DownloadPDF godoc
// @Summary      Descargar reporte PDF del lote
// @Tags         lotes
// @Produce      application/pdf
// @Param        archivo  path  string  true  "Nombre del archivo"
// @Success      200      {file}  file
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/lotes/{archivo}/pdf [get]
func (h *BatchHandler) DownloadPDF(c *fiber.Ctx) error {
	return h.download(c, registro.FormatPDF)
}

func (h *BatchHandler) download(c *fiber.Ctx, format string) error {
	file, err := h.exportUC.Export(c.Context(), c.Params("archivo"), format)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Send(file.Data)
}
