// Package report implementa el motor de analítica descriptiva: un catálogo
// fijo de 24 reportes evaluados sobre un snapshot inmutable de las ocho
// relaciones del dominio (clientes, productos, bodegas, inventario, pedidos,
// líneas de pedido, envíos y proveedores).
//
// El motor es una función pura del snapshot: no muta filas, no hace I/O y
// todos los reportes de un mismo lote observan exactamente los mismos datos,
// por lo que pueden evaluarse en paralelo sin coordinación.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/analytics-pro/internal/domain/entity"
)

// Source identifica el conjunto de filas (hechos) que alimenta un reporte.
// Los warnings de integridad se registran por fuente para que el modo estricto
// solo aborte los reportes afectados.
type Source string

const (
	SourceSales     Source = "sales"     // OrderItem ⋈ Order ⋈ Product ⋈ Customer
	SourceItems     Source = "items"     // OrderItem ⋈ Product (independiente del estado del pedido)
	SourceOrders    Source = "orders"    // pedidos crudos, sin join
	SourceShipments Source = "shipments" // Shipment ⋈ Warehouse
	SourceStock     Source = "stock"     // InventoryLevel ⋈ Product ⋈ Warehouse
)

// Warning señala una referencia rota detectada al construir el snapshot.
// La fila afectada se excluye de los joins que requieren esa referencia
// (semántica de inner join); el reporte no falla salvo en modo estricto.
type Warning struct {
	Source Source `json:"source"`
	Entity string `json:"entity"`
	RowID  string `json:"row_id"`
	Field  string `json:"field"`
	RefID  string `json:"ref_id"`
}

// ── Filas de hechos (joins materializados una sola vez) ───────────────────────

// SalesRow línea de pedido enriquecida con pedido, producto y cliente.
type SalesRow struct {
	OrderID      string
	OrderDate    time.Time
	Status       string
	PaymentMode  string
	CustomerID   string
	CustomerName string
	City         string
	ProductID    string
	ProductName  string
	Category     string
	Quantity     int64
	UnitPrice    decimal.Decimal
	Revenue      decimal.Decimal // Quantity × UnitPrice, derivado al construir la fila
}

// ItemRow línea de pedido cruzada solo con producto (para reportes que no
// filtran por estado del pedido). OutOfStock indica si el producto tiene al
// menos una fila de inventario en cero en el snapshot actual.
type ItemRow struct {
	OrderID     string
	ProductID   string
	ProductName string
	Category    string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Revenue     decimal.Decimal
	OutOfStock  bool
}

// ShipmentRow envío cruzado con su bodega. LeadDays = entrega − despacho en
// días calendario; -1 cuando el envío aún no tiene fecha de entrega.
type ShipmentRow struct {
	ShipmentID    string
	OrderID       string
	WarehouseID   string
	WarehouseName string
	Status        string
	DispatchDate  time.Time
	DeliveryDate  time.Time
	LeadDays      int
}

// StockRow existencia actual cruzada con producto y bodega.
type StockRow struct {
	ProductID     string
	ProductName   string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
}

// ── Snapshot ──────────────────────────────────────────────────────────────────

// Snapshot lectura consistente e inmutable de las ocho colecciones, con los
// joins materializados. Construirlo una vez por lote; compartirlo entre
// goroutines es seguro porque nada lo muta después de NewSnapshot.
type Snapshot struct {
	Customers  []entity.Customer
	Products   []entity.Product
	Warehouses []entity.Warehouse
	Inventory  []entity.InventoryLevel
	Orders     []entity.Order
	OrderItems []entity.OrderItem
	Shipments  []entity.Shipment
	Vendors    []entity.Vendor

	sales     []SalesRow
	items     []ItemRow
	shipments []ShipmentRow
	stock     []StockRow

	warnings []Warning
}

// NewSnapshot indexa las colecciones, materializa los joins y registra un
// warning por cada referencia que no resuelve.
func NewSnapshot(
	customers []entity.Customer,
	products []entity.Product,
	warehouses []entity.Warehouse,
	inventory []entity.InventoryLevel,
	orders []entity.Order,
	orderItems []entity.OrderItem,
	shipments []entity.Shipment,
	vendors []entity.Vendor,
) *Snapshot {
	s := &Snapshot{
		Customers:  customers,
		Products:   products,
		Warehouses: warehouses,
		Inventory:  inventory,
		Orders:     orders,
		OrderItems: orderItems,
		Shipments:  shipments,
		Vendors:    vendors,
	}

	customersByID := make(map[string]entity.Customer, len(customers))
	for _, c := range customers {
		customersByID[c.ID] = c
	}
	productsByID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}
	warehousesByID := make(map[string]entity.Warehouse, len(warehouses))
	for _, w := range warehouses {
		warehousesByID[w.ID] = w
	}
	ordersByID := make(map[string]entity.Order, len(orders))
	for _, o := range orders {
		ordersByID[o.ID] = o
	}

	// Productos con al menos una fila de inventario en cero: es el join
	// point-in-time del reporte de ingreso perdido por stockout (se cruza el
	// estado ACTUAL del stock contra el ingreso histórico del producto; se
	// conserva así a propósito, no es una reconstrucción temporal).
	outOfStock := make(map[string]bool)
	for _, inv := range inventory {
		if inv.Quantity == 0 {
			outOfStock[inv.ProductID] = true
		}
	}

	for _, it := range orderItems {
		prod, okProd := productsByID[it.ProductID]
		if !okProd {
			s.warn(SourceItems, "order_items", it.ID, "product_id", it.ProductID)
			s.warn(SourceSales, "order_items", it.ID, "product_id", it.ProductID)
			continue
		}
		s.items = append(s.items, ItemRow{
			OrderID:     it.OrderID,
			ProductID:   prod.ID,
			ProductName: prod.Name,
			Category:    prod.Category,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Revenue:     it.Revenue(),
			OutOfStock:  outOfStock[prod.ID],
		})

		ord, okOrd := ordersByID[it.OrderID]
		if !okOrd {
			s.warn(SourceSales, "order_items", it.ID, "order_id", it.OrderID)
			continue
		}
		cust, okCust := customersByID[ord.CustomerID]
		if !okCust {
			s.warn(SourceSales, "orders", ord.ID, "customer_id", ord.CustomerID)
			continue
		}
		s.sales = append(s.sales, SalesRow{
			OrderID:      ord.ID,
			OrderDate:    ord.OrderDate,
			Status:       ord.Status,
			PaymentMode:  ord.PaymentMode,
			CustomerID:   cust.ID,
			CustomerName: cust.Name,
			City:         cust.City,
			ProductID:    prod.ID,
			ProductName:  prod.Name,
			Category:     prod.Category,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Revenue:      it.Revenue(),
		})
	}

	for _, sh := range shipments {
		wh, ok := warehousesByID[sh.WarehouseID]
		if !ok {
			s.warn(SourceShipments, "shipments", sh.ID, "warehouse_id", sh.WarehouseID)
			continue
		}
		if _, ok := ordersByID[sh.OrderID]; !ok {
			s.warn(SourceShipments, "shipments", sh.ID, "order_id", sh.OrderID)
			continue
		}
		s.shipments = append(s.shipments, ShipmentRow{
			ShipmentID:    sh.ID,
			OrderID:       sh.OrderID,
			WarehouseID:   wh.ID,
			WarehouseName: wh.Name,
			Status:        sh.DeliveryStatus,
			DispatchDate:  sh.DispatchDate,
			DeliveryDate:  sh.DeliveryDate,
			LeadDays:      sh.LeadDays(),
		})
	}

	for _, inv := range inventory {
		prod, okProd := productsByID[inv.ProductID]
		if !okProd {
			s.warn(SourceStock, "inventory", inv.ID, "product_id", inv.ProductID)
			continue
		}
		wh, okWh := warehousesByID[inv.WarehouseID]
		if !okWh {
			s.warn(SourceStock, "inventory", inv.ID, "warehouse_id", inv.WarehouseID)
			continue
		}
		s.stock = append(s.stock, StockRow{
			ProductID:     prod.ID,
			ProductName:   prod.Name,
			WarehouseID:   wh.ID,
			WarehouseName: wh.Name,
			Quantity:      inv.Quantity,
		})
	}

	return s
}

func (s *Snapshot) warn(src Source, ent, rowID, field, refID string) {
	s.warnings = append(s.warnings, Warning{
		Source: src, Entity: ent, RowID: rowID, Field: field, RefID: refID,
	})
}

// Warnings devuelve todos los warnings de integridad del snapshot.
func (s *Snapshot) Warnings() []Warning { return s.warnings }

// warningsFor filtra los warnings que afectan a alguna de las fuentes dadas.
func (s *Snapshot) warningsFor(sources ...Source) []Warning {
	var out []Warning
	for _, w := range s.warnings {
		for _, src := range sources {
			if w.Source == src {
				out = append(out, w)
				break
			}
		}
	}
	return out
}
