package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/analytics-pro/internal/domain"
	"github.com/tu-usuario/analytics-pro/internal/domain/entity"
)

// Identificadores del catálogo. El número (Seq) es estable y coincide con la
// numeración histórica de los reportes.
const (
	DailyRevenue        = "daily_revenue"
	MonthlyGMV          = "monthly_gmv"
	TopSKUsByRevenue    = "top_skus_by_revenue"
	TopSKUsByUnits      = "top_skus_by_units"
	CategoryRevenue     = "category_revenue"
	AverageOrderValue   = "average_order_value"
	RepeatPurchaseRate  = "repeat_purchase_rate"
	CustomerLTV         = "customer_ltv"
	HighValueCustomers  = "high_value_customers"
	OrderStatusMix      = "order_status_mix"
	CancellationRate    = "cancellation_rate"
	StockAvailability   = "stock_availability"
	StockoutSKUs        = "stockout_skus"
	StockoutLostRevenue = "stockout_lost_revenue"
	WarehouseLeadTime   = "warehouse_lead_time"
	LateDeliveries      = "late_deliveries"
	OnTimeDeliveryRate  = "on_time_delivery_rate"
	CitySales           = "city_sales"
	FastMovingProducts  = "fast_moving_products"
	SlowMovingProducts  = "slow_moving_products"
	PaymentModeRevenue  = "payment_mode_revenue"
	WeekdayVsWeekend    = "weekday_vs_weekend"
	AvgBasketSize       = "avg_basket_size"
	BusinessHealth      = "business_health"
)

// Etiquetas del reporte día laboral vs. fin de semana. La convención de fin de
// semana es fija e independiente de locale: sábado y domingo según
// time.Weekday.
const (
	dayTypeWeekday = "Weekday"
	dayTypeWeekend = "Weekend"
)

// Spec declara un reporte del catálogo: metadatos más la evaluación, que es
// una composición de las primitivas de evaluator.go. El catálogo completo es
// la tabla specs de abajo; no existen reportes fuera de ella.
type Spec struct {
	ID      string
	Seq     int
	Name    string
	Kind    Kind
	Sources []Source
	run     func(s *Snapshot, opt Options) (*Result, error)
}

func delivered(r SalesRow) bool { return r.Status == entity.OrderStatusDelivered }

func dayKey(r SalesRow) string   { return r.OrderDate.Format("2006-01-02") }
func monthKey(r SalesRow) string { return r.OrderDate.Format("2006-01") }

func dayType(r SalesRow) string {
	wd := r.OrderDate.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return dayTypeWeekend
	}
	return dayTypeWeekday
}

func salesRevenue(r SalesRow) decimal.Decimal { return r.Revenue }
func itemRevenue(r ItemRow) decimal.Decimal   { return r.Revenue }
func itemUnits(r ItemRow) decimal.Decimal     { return fromInt(r.Quantity) }

// specs es el catálogo completo: 24 reportes, todo dato (filtro, clave de
// grupo, agregado, HAVING, orden, límite), evaluados por las mismas
// primitivas. El orden de la tabla es el de Seq.
var specs = []Spec{
	{
		ID: DailyRevenue, Seq: 1, Name: "Ingreso diario (pedidos entregados)",
		Kind: KindGrouped, Sources: []Source{SourceSales},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := orderBy(groupSum(s.sales, delivered, dayKey, salesRevenue), OrderKeyAsc)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: MonthlyGMV, Seq: 2, Name: "GMV mensual",
		Kind: KindGrouped, Sources: []Source{SourceSales},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := orderBy(groupSum(s.sales, delivered, monthKey, salesRevenue), OrderKeyAsc)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: TopSKUsByRevenue, Seq: 3, Name: "Top SKUs por ingreso",
		Kind: KindGrouped, Sources: []Source{SourceItems},
		run: func(s *Snapshot, opt Options) (*Result, error) {
			groups := groupSum(s.items, nil, func(r ItemRow) string { return r.ProductName }, itemRevenue)
			groups = topN(orderBy(groups, OrderValueDesc), opt.TopN)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: TopSKUsByUnits, Seq: 4, Name: "Top SKUs por unidades",
		Kind: KindGrouped, Sources: []Source{SourceItems},
		run: func(s *Snapshot, opt Options) (*Result, error) {
			groups := groupSum(s.items, nil, func(r ItemRow) string { return r.ProductName }, itemUnits)
			groups = topN(orderBy(groups, OrderValueDesc), opt.TopN)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: CategoryRevenue, Seq: 5, Name: "Ingreso por categoría",
		Kind: KindGrouped, Sources: []Source{SourceItems},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := orderBy(groupSum(s.items, nil, func(r ItemRow) string { return r.Category }, itemRevenue), OrderValueDesc)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: AverageOrderValue, Seq: 6, Name: "Valor promedio de pedido (AOV)",
		Kind: KindScalar, Sources: []Source{SourceSales},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			revenue := sumWhere(s.sales, delivered, salesRevenue)
			orders := distinctWhere(s.sales, delivered, func(r SalesRow) string { return r.OrderID })
			aov, err := ratio(revenue, fromInt(orders))
			if err != nil {
				return &Result{Undefined: true}, err
			}
			return &Result{Scalar: aov}, nil
		},
	},
	{
		ID: RepeatPurchaseRate, Seq: 7, Name: "Tasa de recompra",
		Kind: KindScalar, Sources: []Source{SourceSales},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			// Etapa 1: pedidos entregados distintos por cliente como colección
			// intermedia; Etapa 2: reducción a recompradores / total.
			ordersByCustomer := make(map[string]map[string]struct{})
			for _, r := range s.sales {
				if !delivered(r) {
					continue
				}
				set, ok := ordersByCustomer[r.CustomerID]
				if !ok {
					set = make(map[string]struct{})
					ordersByCustomer[r.CustomerID] = set
				}
				set[r.OrderID] = struct{}{}
			}
			var repeaters int64
			for _, orders := range ordersByCustomer {
				if len(orders) > 1 {
					repeaters++
				}
			}
			rate, err := percent(fromInt(repeaters), fromInt(int64(len(ordersByCustomer))))
			if err != nil {
				return &Result{Undefined: true}, err
			}
			return &Result{Scalar: rate}, nil
		},
	},
	{
		ID: CustomerLTV, Seq: 8, Name: "Ingreso de por vida por cliente (LTV)",
		Kind: KindGrouped, Sources: []Source{SourceSales},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := orderBy(groupSum(s.sales, delivered, func(r SalesRow) string { return r.CustomerName }, salesRevenue), OrderValueDesc)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: HighValueCustomers, Seq: 9, Name: "Clientes de alto valor",
		Kind: KindGrouped, Sources: []Source{SourceSales},
		run: func(s *Snapshot, opt Options) (*Result, error) {
			groups := groupSum(s.sales, delivered, func(r SalesRow) string { return r.CustomerName }, salesRevenue)
			// Umbral estricto: un LTV exactamente igual al umbral queda fuera.
			groups = having(groups, func(g Group) bool { return g.Value.GreaterThan(opt.HighValueThreshold) })
			return &Result{Groups: orderBy(groups, OrderValueDesc)}, nil
		},
	},
	{
		ID: OrderStatusMix, Seq: 10, Name: "Mezcla de estados de pedido",
		Kind: KindGrouped, Sources: []Source{SourceOrders},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			// Sin filtro: los estados no reconocidos también cuentan aquí.
			groups := groupSum(s.Orders, nil,
				func(o entity.Order) string { return o.Status },
				func(o entity.Order) decimal.Decimal { return decimal.NewFromInt(1) })
			return &Result{Groups: orderBy(groups, OrderKeyAsc)}, nil
		},
	},
	{
		ID: CancellationRate, Seq: 11, Name: "Tasa de cancelación",
		Kind: KindScalar, Sources: []Source{SourceOrders},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			cancelled := countWhere(s.Orders, entity.Order.IsCancelled)
			total := int64(len(s.Orders))
			rate, err := percent(fromInt(cancelled), fromInt(total))
			if err != nil {
				return &Result{Undefined: true}, err
			}
			return &Result{Scalar: rate}, nil
		},
	},
	{
		ID: StockAvailability, Seq: 12, Name: "Disponibilidad de stock por bodega",
		Kind: KindGrouped, Sources: []Source{SourceStock},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			// El grano del inventario ya es bodega×producto; la "suma" de un
			// solo elemento lista la existencia tal cual.
			groups := groupSum(s.stock, nil,
				func(r StockRow) string { return r.WarehouseName + " / " + r.ProductName },
				func(r StockRow) decimal.Decimal { return fromInt(r.Quantity) })
			return &Result{Groups: orderBy(groups, OrderKeyAsc)}, nil
		},
	},
	{
		ID: StockoutSKUs, Seq: 13, Name: "SKUs agotados",
		Kind: KindGrouped, Sources: []Source{SourceStock},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := groupSum(s.stock,
				func(r StockRow) bool { return r.Quantity == 0 },
				func(r StockRow) string { return r.ProductName + " / " + r.WarehouseName },
				func(StockRow) decimal.Decimal { return decimal.Zero })
			return &Result{Groups: orderBy(groups, OrderKeyAsc)}, nil
		},
	},
	{
		ID: StockoutLostRevenue, Seq: 14, Name: "Ingreso perdido por stockouts",
		Kind: KindGrouped, Sources: []Source{SourceItems, SourceStock},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			// Join point-in-time: stock actual en cero × ingreso histórico del
			// producto. Es la semántica original y se conserva tal cual.
			groups := groupSum(s.items,
				func(r ItemRow) bool { return r.OutOfStock },
				func(r ItemRow) string { return r.ProductName },
				itemRevenue)
			return &Result{Groups: orderBy(groups, OrderValueDesc)}, nil
		},
	},
	{
		ID: WarehouseLeadTime, Seq: 15, Name: "Tiempo de entrega promedio por bodega",
		Kind: KindGrouped, Sources: []Source{SourceShipments},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := groupAvg(s.shipments,
				func(r ShipmentRow) bool { return r.Status == entity.ShipmentStatusDelivered },
				func(r ShipmentRow) string { return r.WarehouseName },
				func(r ShipmentRow) decimal.Decimal { return fromInt(int64(r.LeadDays)) })
			return &Result{Groups: orderBy(groups, OrderKeyAsc)}, nil
		},
	},
	{
		ID: LateDeliveries, Seq: 16, Name: "Entregas tardías",
		Kind: KindScalar, Sources: []Source{SourceShipments},
		run: func(s *Snapshot, opt Options) (*Result, error) {
			late := countWhere(s.shipments, func(r ShipmentRow) bool {
				return r.Status == entity.ShipmentStatusDelivered && r.LeadDays > opt.SLADays
			})
			return &Result{Scalar: fromInt(late)}, nil
		},
	},
	{
		ID: OnTimeDeliveryRate, Seq: 17, Name: "Tasa de entrega a tiempo",
		Kind: KindScalar, Sources: []Source{SourceShipments},
		run: func(s *Snapshot, opt Options) (*Result, error) {
			// Numerador: entregados dentro del SLA. Denominador: todos los
			// envíos (los no entregados cuentan en contra de la tasa).
			onTime := countWhere(s.shipments, func(r ShipmentRow) bool {
				return r.Status == entity.ShipmentStatusDelivered && r.LeadDays >= 0 && r.LeadDays <= opt.SLADays
			})
			total := int64(len(s.shipments))
			rate, err := percent(fromInt(onTime), fromInt(total))
			if err != nil {
				return &Result{Undefined: true}, err
			}
			return &Result{Scalar: rate}, nil
		},
	},
	{
		ID: CitySales, Seq: 18, Name: "Ventas por ciudad",
		Kind: KindGrouped, Sources: []Source{SourceSales},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := orderBy(groupSum(s.sales, delivered, func(r SalesRow) string { return r.City }, salesRevenue), OrderValueDesc)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: FastMovingProducts, Seq: 19, Name: "Productos de alta rotación",
		Kind: KindGrouped, Sources: []Source{SourceItems},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := orderBy(groupSum(s.items, nil, func(r ItemRow) string { return r.ProductName }, itemUnits), OrderValueDesc)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: SlowMovingProducts, Seq: 20, Name: "Productos de baja rotación",
		Kind: KindGrouped, Sources: []Source{SourceItems},
		run: func(s *Snapshot, opt Options) (*Result, error) {
			groups := groupSum(s.items, nil, func(r ItemRow) string { return r.ProductName }, itemUnits)
			groups = having(groups, func(g Group) bool { return g.Value.LessThan(fromInt(opt.SlowMovingUnits)) })
			return &Result{Groups: orderBy(groups, OrderValueAsc)}, nil
		},
	},
	{
		ID: PaymentModeRevenue, Seq: 21, Name: "Ingreso por medio de pago",
		Kind: KindGrouped, Sources: []Source{SourceSales},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := orderBy(groupSum(s.sales, delivered, func(r SalesRow) string { return r.PaymentMode }, salesRevenue), OrderValueDesc)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: WeekdayVsWeekend, Seq: 22, Name: "Ventas día laboral vs. fin de semana",
		Kind: KindGrouped, Sources: []Source{SourceSales},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			groups := orderBy(groupSum(s.sales, delivered, dayType, salesRevenue), OrderKeyAsc)
			return &Result{Groups: groups}, nil
		},
	},
	{
		ID: AvgBasketSize, Seq: 23, Name: "Tamaño promedio de canasta",
		Kind: KindScalar, Sources: []Source{SourceItems},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			// avg(unidades por pedido) = unidades totales / pedidos distintos.
			units := sumWhere(s.items, nil, itemUnits)
			orders := distinctWhere(s.items, nil, func(r ItemRow) string { return r.OrderID })
			size, err := ratio(units, fromInt(orders))
			if err != nil {
				return &Result{Undefined: true}, err
			}
			return &Result{Scalar: size}, nil
		},
	},
	{
		ID: BusinessHealth, Seq: 24, Name: "Salud del negocio",
		Kind: KindSummary, Sources: []Source{SourceSales},
		run: func(s *Snapshot, _ Options) (*Result, error) {
			return &Result{Summary: &HealthSummary{
				Orders:    distinctWhere(s.sales, delivered, func(r SalesRow) string { return r.OrderID }),
				Customers: distinctWhere(s.sales, delivered, func(r SalesRow) string { return r.CustomerID }),
				Revenue:   sumWhere(s.sales, delivered, salesRevenue),
			}}, nil
		},
	},
}

var specsByID = func() map[string]Spec {
	m := make(map[string]Spec, len(specs))
	for _, sp := range specs {
		m[sp.ID] = sp
	}
	return m
}()

// ── Motor ─────────────────────────────────────────────────────────────────────

// Engine evalúa el catálogo sobre snapshots. Es seguro para uso concurrente:
// no tiene estado mutable más allá de las opciones validadas al construirlo.
type Engine struct {
	opt Options
}

// New construye el motor. Una configuración inválida se rechaza aquí, antes
// de cualquier cómputo.
func New(opt Options) (*Engine, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opt: opt}, nil
}

// Options devuelve la configuración efectiva del motor.
func (e *Engine) Options() Options { return e.opt }

// Catalog devuelve los metadatos de los 24 reportes en orden de Seq.
func (e *Engine) Catalog() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Report evalúa un reporte por ID sobre el snapshot dado. El resultado es
// atómico: o viene completo, o el error es un *ReportError tipado. Con
// denominador cero se devuelven ambos: un Result marcado Undefined y el error
// que envuelve ErrDivisionByZero.
func (e *Engine) Report(ctx context.Context, s *Snapshot, id string) (*Result, error) {
	sp, ok := specsByID[id]
	if !ok {
		return nil, &ReportError{ReportID: id, Err: fmt.Errorf("%w: %q", domain.ErrUnknownReport, id)}
	}
	if err := ctx.Err(); err != nil {
		return nil, &ReportError{ReportID: id, Err: fmt.Errorf("%w: %v", domain.ErrReportTimeout, err)}
	}

	warnings := s.warningsFor(sp.Sources...)
	if e.opt.Strict && len(warnings) > 0 {
		w := warnings[0]
		return nil, &ReportError{ReportID: id, Err: fmt.Errorf(
			"%w: %s.%s=%s (fila %s)", domain.ErrMissingReference, w.Entity, w.Field, w.RefID, w.RowID)}
	}

	res, err := sp.run(s, e.opt)
	if res != nil {
		res.ID = sp.ID
		res.Seq = sp.Seq
		res.Name = sp.Name
		res.Kind = sp.Kind
		res.Warnings = warnings
	}
	if err != nil {
		return res, &ReportError{ReportID: id, Err: err}
	}
	return res, nil
}
