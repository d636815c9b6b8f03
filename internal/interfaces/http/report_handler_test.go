package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/analytics-pro/internal/application/dto"
	"github.com/tu-usuario/analytics-pro/internal/application/reporting"
	"github.com/tu-usuario/analytics-pro/internal/domain/report"
	"github.com/tu-usuario/analytics-pro/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/analytics-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/analytics-pro/pkg/jwt"
	"github.com/tu-usuario/analytics-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "analytics-pro-test"
	testExpMin    = 60
)

// pdfFalso generador de PDF de prueba; devuelve un cuerpo fijo.
type pdfFalso struct{}

func (pdfFalso) GenerateSummaryPDF(context.Context, *reporting.BatchResult) ([]byte, error) {
	return []byte("%PDF-1.7 resumen"), nil
}

// buildTestApp construye la app Fiber completa sobre el dataset dado, con el
// router real y el middleware de auth activo.
func buildTestApp(t *testing.T, data memory.Dataset) *fiber.App {
	t.Helper()

	engine, err := report.New(report.DefaultOptions())
	require.NoError(t, err)
	log := logger.New(logger.Config{Level: "error", Writer: io.Discard})
	uc := reporting.NewBatchUseCase(memory.NewSnapshotSource(data), engine, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		BatchUC:      uc,
		PDF:          pdfFalso{},
		JWTSecret:    testJWTSecret,
		BatchTimeout: 5 * time.Second,
	})
	return app
}

// tokenViewer genera un JWT válido con rol de solo lectura.
func tokenViewer(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "viewer", testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET con el header de auth dado.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin header de autorización → 401.
func TestAuth_SinToken(t *testing.T) {
	app := buildTestApp(t, memory.SampleDataset())

	resp := doRequest(t, app, "/api/reports/", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Equal(t, "MISSING_TOKEN", errResp.Code)
}

// Caso 2: token firmado con otro secreto → 401.
func TestAuth_TokenInvalido(t *testing.T) {
	app := buildTestApp(t, memory.SampleDataset())
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, "viewer", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "/api/reports/", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ReportHandler
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_ListaLosVeinticuatro(t *testing.T) {
	app := buildTestApp(t, memory.SampleDataset())

	resp := doRequest(t, app, "/api/reports/", tokenViewer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var catalog []dto.CatalogEntryDTO
	decodeJSON(t, resp, &catalog)
	require.Len(t, catalog, 24)
	assert.Equal(t, 1, catalog[0].Seq)
	assert.Equal(t, "daily_revenue", catalog[0].ID)
}

func TestRunReport_Escalar(t *testing.T) {
	app := buildTestApp(t, memory.SampleDataset())

	resp := doRequest(t, app, "/api/reports/average_order_value", tokenViewer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rep dto.ReportDTO
	decodeJSON(t, resp, &rep)
	assert.Equal(t, "average_order_value", rep.ID)
	require.NotNil(t, rep.Scalar)
	assert.Equal(t, "51478.6", rep.Scalar.String())
	assert.Nil(t, rep.Error)
}

func TestRunReport_Desconocido(t *testing.T) {
	app := buildTestApp(t, memory.SampleDataset())

	resp := doRequest(t, app, "/api/reports/no_existe", tokenViewer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Equal(t, "UNKNOWN_REPORT", errResp.Code)
}

// Un escalar con denominador cero responde 200 con el marcador de indefinido;
// no es un fallo del servidor.
func TestRunReport_Indefinido(t *testing.T) {
	app := buildTestApp(t, memory.Dataset{})

	resp := doRequest(t, app, "/api/reports/average_order_value", tokenViewer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rep dto.ReportDTO
	decodeJSON(t, resp, &rep)
	assert.True(t, rep.Undefined)
	assert.Nil(t, rep.Scalar)
	require.NotNil(t, rep.Error)
	assert.Equal(t, "DIVISION_BY_ZERO", rep.Error.Code)
}

func TestRunBatch_CorridaCompleta(t *testing.T) {
	app := buildTestApp(t, memory.SampleDataset())

	resp := doRequest(t, app, "/api/reports/run", tokenViewer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var batch dto.BatchDTO
	decodeJSON(t, resp, &batch)
	assert.NotEmpty(t, batch.RunID)
	assert.Zero(t, batch.Failed)
	require.Len(t, batch.Reports, 24)
	assert.Equal(t, "daily_revenue", batch.Reports[0].ID)
}

func TestSummaryPDF(t *testing.T) {
	app := buildTestApp(t, memory.SampleDataset())

	resp := doRequest(t, app, "/api/reports/summary.pdf", tokenViewer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 resumen", string(body))
}
