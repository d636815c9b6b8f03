// Package memory implementa el puerto SnapshotSource sobre colecciones en
// memoria. Lo usan los tests y el seeder; también sirve como fuente de demo
// sin base de datos.
package memory

import (
	"context"

	"github.com/tu-usuario/analytics-pro/internal/domain/entity"
	"github.com/tu-usuario/analytics-pro/internal/domain/repository"
)

var _ repository.SnapshotSource = (*SnapshotSource)(nil)

// Dataset colecciones completas de las ocho entidades.
type Dataset struct {
	Customers  []entity.Customer
	Products   []entity.Product
	Warehouses []entity.Warehouse
	Inventory  []entity.InventoryLevel
	Orders     []entity.Order
	OrderItems []entity.OrderItem
	Shipments  []entity.Shipment
	Vendors    []entity.Vendor
}

// SnapshotSource fuente en memoria. Las colecciones se devuelven tal cual:
// el contrato del puerto es de solo lectura.
type SnapshotSource struct {
	data Dataset
}

// NewSnapshotSource construye la fuente con el dataset dado.
func NewSnapshotSource(data Dataset) *SnapshotSource {
	return &SnapshotSource{data: data}
}

func (s *SnapshotSource) AllCustomers(context.Context) ([]entity.Customer, error) {
	return s.data.Customers, nil
}

func (s *SnapshotSource) AllProducts(context.Context) ([]entity.Product, error) {
	return s.data.Products, nil
}

func (s *SnapshotSource) AllWarehouses(context.Context) ([]entity.Warehouse, error) {
	return s.data.Warehouses, nil
}

func (s *SnapshotSource) AllInventory(context.Context) ([]entity.InventoryLevel, error) {
	return s.data.Inventory, nil
}

func (s *SnapshotSource) AllOrders(context.Context) ([]entity.Order, error) {
	return s.data.Orders, nil
}

func (s *SnapshotSource) AllOrderItems(context.Context) ([]entity.OrderItem, error) {
	return s.data.OrderItems, nil
}

func (s *SnapshotSource) AllShipments(context.Context) ([]entity.Shipment, error) {
	return s.data.Shipments, nil
}

func (s *SnapshotSource) AllVendors(context.Context) ([]entity.Vendor, error) {
	return s.data.Vendors, nil
}
