package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/analytics-pro/internal/domain/entity"
	"github.com/tu-usuario/analytics-pro/internal/domain/repository"
)

var _ repository.SnapshotSource = (*SnapshotSourceRepo)(nil)

// SnapshotSourceRepo adaptador de lectura de las ocho tablas del dataset.
// Cada método trae la colección completa; el motor arma el snapshot y hace
// los joins en memoria.
type SnapshotSourceRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotSource construye el adaptador.
func NewSnapshotSource(pool *pgxpool.Pool) *SnapshotSourceRepo {
	return &SnapshotSourceRepo{pool: pool}
}

// AllCustomers trae todos los clientes.
func (r *SnapshotSourceRepo) AllCustomers(ctx context.Context) ([]entity.Customer, error) {
	const query = `
		SELECT id, name, email, phone, city, registered_at
		FROM customers ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot.AllCustomers: %w", err)
	}
	defer rows.Close()

	var out []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.RegisteredAt); err != nil {
			return nil, fmt.Errorf("snapshot.AllCustomers scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AllProducts trae todos los productos.
func (r *SnapshotSourceRepo) AllProducts(ctx context.Context) ([]entity.Product, error) {
	const query = `
		SELECT id, name, category, brand, cost_price, selling_price
		FROM products ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot.AllProducts: %w", err)
	}
	defer rows.Close()

	var out []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Brand, &p.CostPrice, &p.SellingPrice); err != nil {
			return nil, fmt.Errorf("snapshot.AllProducts scan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AllWarehouses trae todas las bodegas.
func (r *SnapshotSourceRepo) AllWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	const query = `SELECT id, name, city, capacity FROM warehouses ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot.AllWarehouses: %w", err)
	}
	defer rows.Close()

	var out []entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.City, &w.Capacity); err != nil {
			return nil, fmt.Errorf("snapshot.AllWarehouses scan: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// AllInventory trae todas las existencias (grano producto×bodega).
func (r *SnapshotSourceRepo) AllInventory(ctx context.Context) ([]entity.InventoryLevel, error) {
	const query = `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventory ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot.AllInventory: %w", err)
	}
	defer rows.Close()

	var out []entity.InventoryLevel
	for rows.Next() {
		var inv entity.InventoryLevel
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("snapshot.AllInventory scan: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// AllOrders trae todos los pedidos.
func (r *SnapshotSourceRepo) AllOrders(ctx context.Context) ([]entity.Order, error) {
	const query = `
		SELECT id, customer_id, order_date, status, payment_mode
		FROM orders ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot.AllOrders: %w", err)
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status, &o.PaymentMode); err != nil {
			return nil, fmt.Errorf("snapshot.AllOrders scan: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// AllOrderItems trae todas las líneas de pedido.
func (r *SnapshotSourceRepo) AllOrderItems(ctx context.Context) ([]entity.OrderItem, error) {
	const query = `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot.AllOrderItems: %w", err)
	}
	defer rows.Close()

	var out []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("snapshot.AllOrderItems scan: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// AllShipments trae todos los envíos. delivery_date es NULL hasta la entrega.
func (r *SnapshotSourceRepo) AllShipments(ctx context.Context) ([]entity.Shipment, error) {
	const query = `
		SELECT id, order_id, warehouse_id, dispatch_date, delivery_date, delivery_status
		FROM shipments ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot.AllShipments: %w", err)
	}
	defer rows.Close()

	var out []entity.Shipment
	for rows.Next() {
		var (
			sh        entity.Shipment
			delivered *time.Time
		)
		if err := rows.Scan(&sh.ID, &sh.OrderID, &sh.WarehouseID, &sh.DispatchDate, &delivered, &sh.DeliveryStatus); err != nil {
			return nil, fmt.Errorf("snapshot.AllShipments scan: %w", err)
		}
		if delivered != nil {
			sh.DeliveryDate = *delivered
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

// AllVendors trae todos los proveedores (stub: ningún reporte los cruza).
func (r *SnapshotSourceRepo) AllVendors(ctx context.Context) ([]entity.Vendor, error) {
	const query = `SELECT id, name, city FROM vendors ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot.AllVendors: %w", err)
	}
	defer rows.Close()

	var out []entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.City); err != nil {
			return nil, fmt.Errorf("snapshot.AllVendors scan: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
