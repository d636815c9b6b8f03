package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/analytics-pro/internal/application/dto"
	"github.com/tu-usuario/analytics-pro/internal/application/reporting"
	"github.com/tu-usuario/analytics-pro/internal/domain"
)

// SummaryPDFGenerator genera la representación PDF de una corrida del catálogo.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, batch *reporting.BatchResult) ([]byte, error)
}

// ReportHandler expone el catálogo de reportes analíticos.
type ReportHandler struct {
	uc           *reporting.BatchUseCase
	pdf          SummaryPDFGenerator
	batchTimeout time.Duration
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.BatchUseCase, pdf SummaryPDFGenerator, batchTimeout time.Duration) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, batchTimeout: batchTimeout}
}

// Catalog devuelve los metadatos de los 24 reportes.
func (h *ReportHandler) Catalog(c *fiber.Ctx) error {
	var out []dto.CatalogEntryDTO
	for _, sp := range h.uc.Catalog() {
		out = append(out, dto.CatalogEntryDTO{ID: sp.ID, Seq: sp.Seq, Name: sp.Name, Kind: string(sp.Kind)})
	}
	return c.JSON(out)
}

// RunBatch corre el catálogo completo sobre un snapshot fresco del almacén.
// El deadline del lote viene de configuración; los reportes que no alcancen a
// evaluarse se devuelven con error TIMEOUT sin afectar al resto.
func (h *ReportHandler) RunBatch(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.batchTimeout)
	defer cancel()

	batch, err := h.uc.Run(ctx)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "SNAPSHOT_UNAVAILABLE", Message: err.Error(),
		})
	}
	return c.JSON(dto.FromBatch(batch))
}

// RunReport corre un único reporte por ID.
func (h *ReportHandler) RunReport(c *fiber.Ctx) error {
	id := c.Params("id")

	ctx, cancel := context.WithTimeout(c.Context(), h.batchTimeout)
	defer cancel()

	res, err := h.uc.Report(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownReport):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "UNKNOWN_REPORT", Message: err.Error(),
			})
		case errors.Is(err, domain.ErrDivisionByZero):
			// Métrica indefinida: se responde 200 con el marcador y el código
			// del error, no con un fallo del servidor.
			return c.JSON(dto.FromResult(res, err))
		case errors.Is(err, domain.ErrMissingReference), errors.Is(err, domain.ErrReportTimeout):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.FromResult(res, err))
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "SNAPSHOT_UNAVAILABLE", Message: err.Error(),
			})
		}
	}
	return c.JSON(dto.FromResult(res, nil))
}

// SummaryPDF corre el lote y devuelve el resumen ejecutivo en PDF.
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.batchTimeout)
	defer cancel()

	batch, err := h.uc.Run(ctx)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "SNAPSHOT_UNAVAILABLE", Message: err.Error(),
		})
	}
	pdfBytes, err := h.pdf.GenerateSummaryPDF(ctx, batch)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "PDF_GENERATION", Message: err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="business-health.pdf"`)
	return c.Send(pdfBytes)
}
