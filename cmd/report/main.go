// report corre el catálogo completo de reportes una vez y escribe el
// resultado como JSON en stdout. Pensado para ejecutarse como job programado
// (cron) contra la misma base que sirve la API.
//
// Uso: go run ./cmd/report [--pretty]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/tu-usuario/analytics-pro/internal/application/dto"
	"github.com/tu-usuario/analytics-pro/internal/application/reporting"
	"github.com/tu-usuario/analytics-pro/internal/domain/report"
	"github.com/tu-usuario/analytics-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/analytics-pro/pkg/config"
	"github.com/tu-usuario/analytics-pro/pkg/logger"
)

func main() {
	pretty := flag.Bool("pretty", false, "JSON indentado")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// El log va a stderr para no contaminar el JSON de stdout.
	log := logger.New(logger.Config{Env: "production", Level: "warn", Writer: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Reports.BatchTimeout)
	defer cancel()

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

	batchUC := reporting.NewBatchUseCase(postgres.NewSnapshotSource(pool), engine, log)
	batch, err := batchUC.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar snapshot")
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(dto.FromBatch(batch)); err != nil {
		log.Fatal().Err(err).Msg("serializar resultado")
	}
}
