package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/application/registro"
	"github.com/jhoicas/concar-rcp/pkg/logger"
)

// DocumentHandler envío de lotes e historial de documentos.
type DocumentHandler struct {
	submitUC  *registro.SubmitBatchUseCase
	historyUC *registro.HistoryUseCase
	log       *logger.Logger
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(submitUC *registro.SubmitBatchUseCase, historyUC *registro.HistoryUseCase, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{submitUC: submitUC, historyUC: historyUC, log: log}
}

// Submit godoc
// @Summary      Registrar lote de documentos
// @Description  Asigna el correlativo del día y guarda todos los documentos en una sola transacción.
// @Tags         documentos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SubmitDocumentsRequest  true  "Documentos del lote"
// @Success      201   {object}  dto.SubmitDocumentsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/documentos [post]
func (h *DocumentHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitDocumentsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.submitUC.Submit(c.Context(), in)
	if err != nil {
		h.log.Debug().Err(err).Str("request_id", requestID(c)).Msg("envío rechazado")
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de documentos
// @Description  Documentos registrados, del más reciente al más antiguo.
// @Tags         documentos
// @Produce      json
// @Param        limit       query     int     false  "Límite (máx. 500)"  default(100)
// @Param        offset      query     int     false  "Offset"             default(0)
// @Param        fechaDesde  query     string  false  "AAAA-MM-DD, inclusivo"
// @Param        fechaHasta  query     string  false  "AAAA-MM-DD, inclusivo"
// @Success      200         {object}  dto.DocumentPage
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/documentos [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	q := dto.HistoryQuery{
		PageRequest: dto.PageRequest{Limit: c.QueryInt("limit", dto.DefaultLimit), Offset: c.QueryInt("offset", 0)},
		FechaDesde:  c.Query("fechaDesde"),
		FechaHasta:  c.Query("fechaHasta"),
	}
	out, err := h.historyUC.ListDocuments(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
