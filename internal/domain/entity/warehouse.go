package entity

// Warehouse representa una bodega de despacho.
type Warehouse struct {
	ID       string
	Name     string
	City     string
	Capacity int64
}
