// seed aplica el esquema y puebla la base con el dataset simulado de la
// tienda. Es el colaborador de ingesta: el único binario del repo que escribe
// en las tablas; la API y el job de reportes son de solo lectura.
//
// Uso: go run ./cmd/seed
// Es idempotente: borra las filas existentes antes de insertar.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/analytics-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/analytics-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/analytics-pro/pkg/config"
	"github.com/tu-usuario/analytics-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	schemaPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "001_schema.sql")
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("leer esquema")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	data := memory.SampleDataset()

	// Toda la carga en una transacción: o queda el dataset completo o nada.
	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir transacción")
	}
	defer tx.Rollback(ctx)

	// Orden inverso de dependencias para el truncado.
	for _, table := range []string{"shipments", "order_items", "orders", "inventory", "vendors", "warehouses", "products", "customers"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("limpiar tabla")
		}
	}

	if err := insertAll(ctx, tx, data); err != nil {
		log.Fatal().Err(err).Msg("insertar dataset")
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("commit")
	}

	log.Info().
		Int("customers", len(data.Customers)).
		Int("products", len(data.Products)).
		Int("orders", len(data.Orders)).
		Int("order_items", len(data.OrderItems)).
		Int("shipments", len(data.Shipments)).
		Msg("dataset cargado")
}

func insertAll(ctx context.Context, tx pgx.Tx, data memory.Dataset) error {
	for _, c := range data.Customers {
		if _, err := tx.Exec(ctx,
			`INSERT INTO customers (id, name, email, phone, city, registered_at) VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, c.Name, c.Email, c.Phone, c.City, c.RegisteredAt); err != nil {
			return fmt.Errorf("customer %s: %w", c.ID, err)
		}
	}
	for _, p := range data.Products {
		if _, err := tx.Exec(ctx,
			`INSERT INTO products (id, name, category, brand, cost_price, selling_price) VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.Name, p.Category, p.Brand, p.CostPrice, p.SellingPrice); err != nil {
			return fmt.Errorf("product %s: %w", p.ID, err)
		}
	}
	for _, w := range data.Warehouses {
		if _, err := tx.Exec(ctx,
			`INSERT INTO warehouses (id, name, city, capacity) VALUES ($1, $2, $3, $4)`,
			w.ID, w.Name, w.City, w.Capacity); err != nil {
			return fmt.Errorf("warehouse %s: %w", w.ID, err)
		}
	}
	for _, v := range data.Vendors {
		if _, err := tx.Exec(ctx,
			`INSERT INTO vendors (id, name, city) VALUES ($1, $2, $3)`,
			v.ID, v.Name, v.City); err != nil {
			return fmt.Errorf("vendor %s: %w", v.ID, err)
		}
	}
	for _, inv := range data.Inventory {
		if _, err := tx.Exec(ctx,
			`INSERT INTO inventory (id, product_id, warehouse_id, quantity, updated_at) VALUES ($1, $2, $3, $4, $5)`,
			inv.ID, inv.ProductID, inv.WarehouseID, inv.Quantity, inv.UpdatedAt); err != nil {
			return fmt.Errorf("inventory %s: %w", inv.ID, err)
		}
	}
	for _, o := range data.Orders {
		if _, err := tx.Exec(ctx,
			`INSERT INTO orders (id, customer_id, order_date, status, payment_mode) VALUES ($1, $2, $3, $4, $5)`,
			o.ID, o.CustomerID, o.OrderDate, o.Status, o.PaymentMode); err != nil {
			return fmt.Errorf("order %s: %w", o.ID, err)
		}
	}
	for _, it := range data.OrderItems {
		if _, err := tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4, $5)`,
			it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice); err != nil {
			return fmt.Errorf("order item %s: %w", it.ID, err)
		}
	}
	for _, sh := range data.Shipments {
		var delivered interface{}
		if !sh.DeliveryDate.IsZero() {
			delivered = sh.DeliveryDate
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO shipments (id, order_id, warehouse_id, dispatch_date, delivery_date, delivery_status) VALUES ($1, $2, $3, $4, $5, $6)`,
			sh.ID, sh.OrderID, sh.WarehouseID, sh.DispatchDate, delivered, sh.DeliveryStatus); err != nil {
			return fmt.Errorf("shipment %s: %w", sh.ID, err)
		}
	}
	return nil
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
