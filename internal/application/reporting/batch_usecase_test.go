package reporting_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/analytics-pro/internal/application/reporting"
	"github.com/tu-usuario/analytics-pro/internal/domain"
	"github.com/tu-usuario/analytics-pro/internal/domain/entity"
	"github.com/tu-usuario/analytics-pro/internal/domain/report"
	"github.com/tu-usuario/analytics-pro/internal/domain/repository"
	"github.com/tu-usuario/analytics-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/analytics-pro/pkg/logger"
)

func loggerSilencioso() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Writer: io.Discard})
}

func casoDeUso(t *testing.T, source repository.SnapshotSource) *reporting.BatchUseCase {
	t.Helper()
	engine, err := report.New(report.DefaultOptions())
	require.NoError(t, err)
	return reporting.NewBatchUseCase(source, engine, loggerSilencioso())
}

func TestRun_CatalogoCompletoSobreDatasetDeMuestra(t *testing.T) {
	uc := casoDeUso(t, memory.NewSnapshotSource(memory.SampleDataset()))

	batch, err := uc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, batch.Outcomes, 24)
	assert.NotEmpty(t, batch.RunID)
	assert.Zero(t, batch.Failed(), "el dataset de muestra no produce ningún error")

	porID := make(map[string]*report.Result, len(batch.Outcomes))
	for i, o := range batch.Outcomes {
		require.NoError(t, o.Err, "reporte %s", o.ID)
		require.NotNil(t, o.Result)
		assert.Equal(t, i+1, o.Result.Seq, "los resultados conservan el orden del catálogo")
		porID[o.ID] = o.Result
	}

	// Valores de control calculados a mano sobre el dataset de muestra.
	aov := porID[report.AverageOrderValue]
	assert.Equal(t, "51478.6", aov.Scalar.String())

	salud := porID[report.BusinessHealth]
	require.NotNil(t, salud.Summary)
	assert.Equal(t, int64(5), salud.Summary.Orders)
	assert.Equal(t, int64(4), salud.Summary.Customers)
	assert.Equal(t, "257393", salud.Summary.Revenue.String())

	recompra := porID[report.RepeatPurchaseRate]
	assert.Equal(t, "25", recompra.Scalar.String())

	cancelacion := porID[report.CancellationRate]
	assert.Equal(t, "12.5", cancelacion.Scalar.String())

	tardias := porID[report.LateDeliveries]
	assert.Equal(t, "2", tardias.Scalar.String())

	agotados := porID[report.StockoutSKUs]
	require.Len(t, agotados.Groups, 2)
	assert.Equal(t, "Desk Lamp / Delhi North", agotados.Groups[0].Key)
	assert.Equal(t, "Laptop Pro 14 / Bangalore Central", agotados.Groups[1].Key)
}

// TestRunOnSnapshot_AislamientoDeFallos verifica que un lote sobre datos
// vacíos conserva los reportes que sí computan: los escalares con denominador
// cero fallan con su error tipado y los agrupados devuelven cero filas.
func TestRunOnSnapshot_AislamientoDeFallos(t *testing.T) {
	uc := casoDeUso(t, memory.NewSnapshotSource(memory.Dataset{}))

	batch, err := uc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, batch.Outcomes, 24)

	fallidos := make(map[string]error)
	for _, o := range batch.Outcomes {
		if o.Err != nil {
			fallidos[o.ID] = o.Err
		}
	}

	// Solo los cinco escalares con denominador dividen; el resto sobrevive.
	require.Len(t, fallidos, 5)
	for _, id := range []string{
		report.AverageOrderValue, report.RepeatPurchaseRate, report.CancellationRate,
		report.OnTimeDeliveryRate, report.AvgBasketSize,
	} {
		assert.ErrorIs(t, fallidos[id], domain.ErrDivisionByZero, "reporte %s", id)
	}

	for _, o := range batch.Outcomes {
		if o.Err == nil {
			require.NotNil(t, o.Result, "reporte %s", o.ID)
			assert.Empty(t, o.Result.Groups)
		}
	}
}

func TestRunOnSnapshot_ContextoVencido(t *testing.T) {
	uc := casoDeUso(t, memory.NewSnapshotSource(memory.SampleDataset()))
	snap, err := uc.LoadSnapshot(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := uc.RunOnSnapshot(ctx, snap)

	require.Len(t, batch.Outcomes, 24)
	assert.Equal(t, 24, batch.Failed())
	for _, o := range batch.Outcomes {
		assert.ErrorIs(t, o.Err, domain.ErrReportTimeout, "reporte %s", o.ID)
	}
}

// fuenteRota falla un fetch concreto para verificar que la carga aborta.
type fuenteRota struct {
	*memory.SnapshotSource
}

var errAlmacen = errors.New("almacén fuera de línea")

func (f fuenteRota) AllShipments(context.Context) ([]entity.Shipment, error) {
	return nil, errAlmacen
}

func TestLoadSnapshot_AbortaConFetchFallido(t *testing.T) {
	uc := casoDeUso(t, fuenteRota{memory.NewSnapshotSource(memory.SampleDataset())})

	snap, err := uc.LoadSnapshot(context.Background())

	assert.Nil(t, snap, "un snapshot parcial no es un snapshot")
	assert.ErrorIs(t, err, errAlmacen)
}

func TestReport_IndividualPorID(t *testing.T) {
	uc := casoDeUso(t, memory.NewSnapshotSource(memory.SampleDataset()))

	res, err := uc.Report(context.Background(), report.MonthlyGMV)
	require.NoError(t, err)

	require.Len(t, res.Groups, 3)
	assert.Equal(t, "2024-01", res.Groups[0].Key)
	assert.Equal(t, "127998", res.Groups[0].Value.String())
	assert.Equal(t, "2024-02", res.Groups[1].Key)
	assert.Equal(t, "75998", res.Groups[1].Value.String())
	assert.Equal(t, "2024-03", res.Groups[2].Key)
	assert.Equal(t, "53397", res.Groups[2].Value.String())
}

// Dos corridas sobre la misma fuente producen resultados idénticos salvo por
// el identificador y las marcas de tiempo de la corrida.
func TestRun_Deterministico(t *testing.T) {
	uc := casoDeUso(t, memory.NewSnapshotSource(memory.SampleDataset()))

	primero, err := uc.Run(context.Background())
	require.NoError(t, err)
	segundo, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, primero.RunID, segundo.RunID)
	require.Len(t, segundo.Outcomes, len(primero.Outcomes))
	for i := range primero.Outcomes {
		assert.Equal(t, primero.Outcomes[i].Result, segundo.Outcomes[i].Result)
	}
}
