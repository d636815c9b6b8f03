package entity

import "github.com/shopspring/decimal"

// Product representa un producto o SKU del catálogo.
// CostPrice y SellingPrice son precios de referencia; el ingreso real de cada
// venta se calcula sobre el unit_price de la línea de pedido, nunca aquí.
type Product struct {
	ID           string
	Name         string
	Category     string
	Brand        string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
}
