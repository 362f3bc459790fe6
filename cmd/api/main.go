package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	_ "github.com/jhoicas/concar-rcp/docs"
	"github.com/jhoicas/concar-rcp/internal/application/registro"
	infrapdf "github.com/jhoicas/concar-rcp/internal/infrastructure/pdf"
	"github.com/jhoicas/concar-rcp/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/concar-rcp/internal/interfaces/http"
	"github.com/jhoicas/concar-rcp/pkg/config"
	"github.com/jhoicas/concar-rcp/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	// .env opcional en desarrollo; en contenedor todo llega por variables de entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		version, err := postgres.Migrate(cfg.DB.ConnectionString())
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Uint("version", version).Msg("esquema actualizado")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	documentRepo := postgres.NewDocumentRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	draftRepo := postgres.NewDraftRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.DB.TxMaxRetries, log)

	location := cfg.App.Location()
	submitUC := registro.NewSubmitBatchUseCase(txRunner, location, log)
	historyUC := registro.NewHistoryUseCase(documentRepo, batchRepo, location)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	exportUC := registro.NewExportUseCase(documentRepo, batchRepo, pdfGenerator, cfg.Export.Charset)
	draftUC := registro.NewDraftUseCase(draftRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "CONCAR RCP API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:  cfg.App.Name,
		SubmitUC: submitUC,
		History:  historyUC,
		Export:   exportUC,
		Drafts:   draftUC,
		Logger:   log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
