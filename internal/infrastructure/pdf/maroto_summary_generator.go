// Package pdf genera el resumen ejecutivo en PDF de una corrida del catálogo
// de reportes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + run ID + fecha de corrida                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALUD DEL NEGOCIO: pedidos / clientes / ingreso            │
//	│  KPIs: AOV, recompra, cancelación, entrega a tiempo, canasta │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Top SKUs por ingreso                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/analytics-pro/internal/application/reporting"
	"github.com/tu-usuario/analytics-pro/internal/domain/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoSummaryGenerator implementa http.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct{}

// NewMarotoSummaryGenerator construye el generador.
func NewMarotoSummaryGenerator() *MarotoSummaryGenerator { return &MarotoSummaryGenerator{} }

// GenerateSummaryPDF genera el PDF del resumen ejecutivo y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(
	_ context.Context,
	batch *reporting.BatchResult,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen Ejecutivo de Analítica", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(batch))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(healthRow(batch))
	m.AddRows(kpiRows(batch)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(topSKURows(batch)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// findResult busca el resultado de un reporte por ID dentro del lote.
func findResult(batch *reporting.BatchResult, id string) *report.Result {
	for _, o := range batch.Outcomes {
		if o.ID == id && o.Err == nil && o.Result != nil {
			return o.Result
		}
	}
	return nil
}

// scalarLabel formatea el escalar de un reporte, o "indefinido" si falló por
// denominador cero.
func scalarLabel(batch *reporting.BatchResult, id, suffix string) string {
	res := findResult(batch, id)
	if res == nil {
		return "indefinido"
	}
	return res.Scalar.Round(2).String() + suffix
}

func headerRow(batch *reporting.BatchResult) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RESUMEN EJECUTIVO DE ANALÍTICA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Corrida "+batch.RunID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+batch.FinishedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Reportes fallidos: %d", batch.Failed()), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// healthRow: las tres métricas del reporte de salud del negocio.
func healthRow(batch *reporting.BatchResult) core.Row {
	res := findResult(batch, report.BusinessHealth)
	orders, customers, revenue := "—", "—", "—"
	if res != nil && res.Summary != nil {
		orders = fmt.Sprintf("%d", res.Summary.Orders)
		customers = fmt.Sprintf("%d", res.Summary.Customers)
		revenue = res.Summary.Revenue.Round(2).String()
	}
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Size: 12, Top: 6}),
		)
	}
	return row.New(15).Add(
		cell("PEDIDOS ENTREGADOS", orders),
		cell("CLIENTES", customers),
		cell("INGRESO TOTAL", revenue),
	)
}

// kpiRows: escalares del catálogo en dos filas de KPIs.
func kpiRows(batch *reporting.BatchResult) []core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		)
	}
	return []core.Row{
		row.New(13).Add(
			kpi("Valor promedio de pedido", scalarLabel(batch, report.AverageOrderValue, "")),
			kpi("Tasa de recompra", scalarLabel(batch, report.RepeatPurchaseRate, " %")),
			kpi("Tasa de cancelación", scalarLabel(batch, report.CancellationRate, " %")),
		),
		row.New(13).Add(
			kpi("Entrega a tiempo", scalarLabel(batch, report.OnTimeDeliveryRate, " %")),
			kpi("Entregas tardías", scalarLabel(batch, report.LateDeliveries, "")),
			kpi("Canasta promedio", scalarLabel(batch, report.AvgBasketSize, " uds")),
		),
	}
}

// topSKURows: tabla de los SKUs con mayor ingreso.
func topSKURows(batch *reporting.BatchResult) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(12).Add(
				text.New("TOP SKUs POR INGRESO", props.Text{
					Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
				}),
			),
		),
	}

	res := findResult(batch, report.TopSKUsByRevenue)
	if res == nil {
		return append(rows, row.New(6).Add(
			col.New(12).Add(text.New("Sin datos", props.Text{Size: 8, Color: colorGray})),
		))
	}
	for i, g := range res.Groups {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{Size: 8, Color: colorGray})),
			col.New(8).Add(text.New(g.Key, props.Text{Size: 8})),
			col.New(3).Add(text.New(g.Value.Round(2).String(), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}
