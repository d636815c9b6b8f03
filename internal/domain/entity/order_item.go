package entity

import "github.com/shopspring/decimal"

// OrderItem línea de un pedido; es el grano de todo cálculo de ingresos.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Revenue devuelve Quantity × UnitPrice. El valor de línea siempre se deriva,
// nunca se almacena.
func (i OrderItem) Revenue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}
