package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/analytics-pro/internal/application/reporting"
	"github.com/tu-usuario/analytics-pro/internal/domain"
	"github.com/tu-usuario/analytics-pro/internal/domain/report"
)

// GroupDTO fila de un reporte agrupado.
type GroupDTO struct {
	Key   string          `json:"key"`
	Value decimal.Decimal `json:"value"`
	Count int64           `json:"count"`
}

// SummaryDTO métricas del reporte de salud del negocio.
type SummaryDTO struct {
	Orders    int64           `json:"orders"`
	Customers int64           `json:"customers"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// WarningDTO referencia rota detectada en el snapshot.
type WarningDTO struct {
	Entity string `json:"entity"`
	RowID  string `json:"row_id"`
	Field  string `json:"field"`
	RefID  string `json:"ref_id"`
}

// ReportDTO resultado serializable de un reporte. Un escalar indefinido
// (denominador cero) viaja con Undefined=true y Scalar nulo; el error tipado
// correspondiente va en Error.
type ReportDTO struct {
	ID        string           `json:"id"`
	Seq       int              `json:"seq"`
	Name      string           `json:"name"`
	Kind      string           `json:"kind,omitempty"`
	Groups    []GroupDTO       `json:"groups,omitempty"`
	Scalar    *decimal.Decimal `json:"scalar,omitempty"`
	Undefined bool             `json:"undefined,omitempty"`
	Summary   *SummaryDTO      `json:"summary,omitempty"`
	Warnings  []WarningDTO     `json:"warnings,omitempty"`
	Error     *ErrorResponse   `json:"error,omitempty"`
}

// BatchDTO respuesta de una corrida completa del catálogo.
type BatchDTO struct {
	RunID      string      `json:"run_id"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Failed     int         `json:"failed"`
	Reports    []ReportDTO `json:"reports"`
}

// CatalogEntryDTO metadatos de un reporte del catálogo.
type CatalogEntryDTO struct {
	ID   string `json:"id"`
	Seq  int    `json:"seq"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// FromResult convierte un resultado del motor (con su posible error tipado)
// al DTO de salida, redondeando montos a 2 decimales en el borde.
func FromResult(res *report.Result, err error) ReportDTO {
	d := ReportDTO{}
	if res != nil {
		d.ID = res.ID
		d.Seq = res.Seq
		d.Name = res.Name
		d.Kind = string(res.Kind)
		d.Undefined = res.Undefined
		for _, g := range res.Groups {
			d.Groups = append(d.Groups, GroupDTO{Key: g.Key, Value: g.Value.Round(2), Count: g.Count})
		}
		if res.Kind == report.KindScalar && !res.Undefined && err == nil {
			v := res.Scalar.Round(2)
			d.Scalar = &v
		}
		if res.Summary != nil {
			d.Summary = &SummaryDTO{
				Orders:    res.Summary.Orders,
				Customers: res.Summary.Customers,
				Revenue:   res.Summary.Revenue.Round(2),
			}
		}
		for _, w := range res.Warnings {
			d.Warnings = append(d.Warnings, WarningDTO{Entity: w.Entity, RowID: w.RowID, Field: w.Field, RefID: w.RefID})
		}
	}
	if err != nil {
		d.Error = &ErrorResponse{Code: errorCode(err), Message: err.Error()}
	}
	return d
}

// FromBatch convierte la corrida completa al DTO de salida.
func FromBatch(b *reporting.BatchResult) BatchDTO {
	out := BatchDTO{
		RunID:      b.RunID,
		StartedAt:  b.StartedAt,
		FinishedAt: b.FinishedAt,
		ElapsedMS:  b.FinishedAt.Sub(b.StartedAt).Milliseconds(),
		Failed:     b.Failed(),
	}
	for _, o := range b.Outcomes {
		d := FromResult(o.Result, o.Err)
		if d.ID == "" {
			d.ID = o.ID
		}
		out.Reports = append(out.Reports, d)
	}
	return out
}

// errorCode mapea los sentinels de dominio a códigos estables de API.
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		return "DIVISION_BY_ZERO"
	case errors.Is(err, domain.ErrMissingReference):
		return "MISSING_REFERENCE"
	case errors.Is(err, domain.ErrReportTimeout):
		return "TIMEOUT"
	case errors.Is(err, domain.ErrInvalidConfiguration):
		return "INVALID_CONFIGURATION"
	case errors.Is(err, domain.ErrUnknownReport):
		return "UNKNOWN_REPORT"
	default:
		return "INTERNAL"
	}
}
