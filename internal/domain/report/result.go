package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind forma del resultado de un reporte.
type Kind string

const (
	KindGrouped Kind = "grouped" // secuencia ordenada de (clave, métrica)
	KindScalar  Kind = "scalar"  // un único valor numérico (o indefinido)
	KindSummary Kind = "summary" // multi-métrica (solo salud del negocio)
)

// Group una fila de un reporte agrupado: clave de grupo, métrica agregada y
// número de filas fuente que cayeron en el grupo.
type Group struct {
	Key   string          `json:"key"`
	Value decimal.Decimal `json:"value"`
	Count int64           `json:"count"`
}

// HealthSummary métricas del reporte de salud del negocio.
type HealthSummary struct {
	Orders    int64           `json:"orders"`    // pedidos entregados distintos
	Customers int64           `json:"customers"` // clientes distintos con entregas
	Revenue   decimal.Decimal `json:"revenue"`   // ingreso total entregado
}

// Result resultado completo y atómico de un reporte: o bien trae todas sus
// filas/valores, o el reporte falló con un error tipado y no hay Result.
// Excepción: un denominador cero devuelve Result con Undefined=true junto al
// error envuelto en ErrDivisionByZero, para que el caller pueda renderizar
// "indefinido" sin perder el resto del lote.
type Result struct {
	ID        string          `json:"id"`
	Seq       int             `json:"seq"`
	Name      string          `json:"name"`
	Kind      Kind            `json:"kind"`
	Groups    []Group         `json:"groups,omitempty"`
	Scalar    decimal.Decimal `json:"scalar,omitempty"`
	Undefined bool            `json:"undefined,omitempty"`
	Summary   *HealthSummary  `json:"summary,omitempty"`
	Warnings  []Warning       `json:"warnings,omitempty"`
}

// ReportError error tipado de un reporte individual. Envuelve siempre uno de
// los sentinels de domain (DivisionByZero, MissingReference, Timeout, ...).
type ReportError struct {
	ReportID string
	Err      error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("reporte %s: %v", e.ReportID, e.Err)
}

func (e *ReportError) Unwrap() error { return e.Err }
