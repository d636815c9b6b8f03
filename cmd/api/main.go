package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/analytics-pro/internal/application/reporting"
	"github.com/tu-usuario/analytics-pro/internal/domain/report"
	infrapdf "github.com/tu-usuario/analytics-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/analytics-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/analytics-pro/internal/interfaces/http"
	"github.com/tu-usuario/analytics-pro/pkg/config"
	"github.com/tu-usuario/analytics-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	engine, err := report.New(report.Options{
		SLADays:            cfg.Reports.SLADays,
		HighValueThreshold: cfg.Reports.HighValueThreshold,
		TopN:               cfg.Reports.TopN,
		SlowMovingUnits:    cfg.Reports.SlowMovingUnits,
		Strict:             cfg.Reports.Strict,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del motor de reportes")
	}

	source := postgres.NewSnapshotSource(pool)
	batchUC := reporting.NewBatchUseCase(source, engine, log)
	pdfGenerator := infrapdf.NewMarotoSummaryGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // la corrida completa puede tardar más que un GET normal
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BatchUC:      batchUC,
		PDF:          pdfGenerator,
		JWTSecret:    cfg.JWT.Secret,
		BatchTimeout: cfg.Reports.BatchTimeout,
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
