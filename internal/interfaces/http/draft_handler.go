package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/concar-rcp/internal/application/dto"
	"github.com/jhoicas/concar-rcp/internal/application/registro"
)

// DraftHandler filas del formulario guardadas en el servidor.
type DraftHandler struct {
	uc *registro.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *registro.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener borrador
// @Tags         borradores
// @Produce      json
// @Success      200  {object}  dto.DraftsResponse
// @Router       /api/borradores [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Load(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar borrador
// @Description  Reemplaza todas las filas guardadas por las recibidas.
// @Tags         borradores
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SaveDraftsRequest  true  "Filas del formulario"
// @Success      200   {object}  dto.DraftsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/borradores [put]
func (h *DraftHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveDraftsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Save(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Limpiar borrador
// @Tags         borradores
// @Success      204
// @Router       /api/borradores [delete]
func (h *DraftHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
