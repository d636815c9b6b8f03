package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/analytics-pro/internal/application/reporting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BatchUC      *reporting.BatchUseCase
	PDF          SummaryPDFGenerator
	JWTSecret    string
	BatchTimeout time.Duration
}

// Router registra las rutas de la API. Toda la superficie /api es de solo
// lectura y requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	reports := api.Group("/reports")
	handler := NewReportHandler(deps.BatchUC, deps.PDF, deps.BatchTimeout)
	reports.Get("/", handler.Catalog)
	reports.Get("/run", handler.RunBatch)
	reports.Get("/summary.pdf", handler.SummaryPDF)
	reports.Get("/:id", handler.RunReport)
}
