package entity

import "time"

// InventoryLevel existencia actual de un producto en una bodega (grano producto×bodega).
type InventoryLevel struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
