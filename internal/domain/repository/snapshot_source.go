package repository

import (
	"context"

	"github.com/tu-usuario/analytics-pro/internal/domain/entity"
)

// SnapshotSource puerto de lectura hacia el almacén que posee las tablas.
// Un método por entidad, siempre "todas las filas actuales"; el motor jamás
// escribe a través de este puerto. Las implementaciones deben devolver datos
// consistentes entre sí dentro de una misma carga de snapshot.
type SnapshotSource interface {
	AllCustomers(ctx context.Context) ([]entity.Customer, error)
	AllProducts(ctx context.Context) ([]entity.Product, error)
	AllWarehouses(ctx context.Context) ([]entity.Warehouse, error)
	AllInventory(ctx context.Context) ([]entity.InventoryLevel, error)
	AllOrders(ctx context.Context) ([]entity.Order, error)
	AllOrderItems(ctx context.Context) ([]entity.OrderItem, error)
	AllShipments(ctx context.Context) ([]entity.Shipment, error)
	AllVendors(ctx context.Context) ([]entity.Vendor, error)
}
