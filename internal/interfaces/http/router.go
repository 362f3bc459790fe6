package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/concar-rcp/internal/application/registro"
	"github.com/jhoicas/concar-rcp/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName  string
	SubmitUC *registro.SubmitBatchUseCase
	History  *registro.HistoryUseCase
	Export   *registro.ExportUseCase
	Drafts   *registro.DraftUseCase
	Logger   *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Especificación OpenAPI registrada por el paquete docs (swag).
	app.Get("/api/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "documentación no registrada"})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	api := app.Group("/api")

	// Documentos: envío de lotes + historial
	documentHandler := NewDocumentHandler(deps.SubmitUC, deps.History, log.Named("http"))
	api.Post("/documentos", documentHandler.Submit)
	api.Get("/documentos", documentHandler.List)

	// Lotes: resúmenes y descargas
	batchHandler := NewBatchHandler(deps.History, deps.Export)
	lotes := api.Group("/lotes")
	lotes.Get("/", batchHandler.List)
	lotes.Get("/:archivo", batchHandler.Get)
	lotes.Get("/:archivo/txt", batchHandler.DownloadFixedWidth)
	lotes.Get("/:archivo/resumen", batchHandler.DownloadSummary)
	lotes.Get("/:archivo/pdf", batchHandler.DownloadPDF)

	// Borradores del formulario
	draftHandler := NewDraftHandler(deps.Drafts)
	api.Get("/borradores", draftHandler.Get)
	api.Put("/borradores", draftHandler.Save)
	api.Delete("/borradores", draftHandler.Clear)
}
