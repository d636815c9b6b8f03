package entity

// Vendor proveedor de productos. Se carga en el snapshot por compatibilidad
// hacia adelante, pero ningún reporte del catálogo lo cruza todavía.
type Vendor struct {
	ID   string
	Name string
	City string
}
