package entity

import "time"

// Estados de pedido conocidos. La comparación siempre es exacta y sensible a
// mayúsculas; un estado no reconocido se excluye de los reportes filtrados por
// estado pero sigue contando en la mezcla de estados y en la tasa de cancelación.
const (
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
	OrderStatusReturned  = "Returned"
	OrderStatusPending   = "Pending"
)

// Order representa un pedido de un cliente.
type Order struct {
	ID          string
	CustomerID  string
	OrderDate   time.Time
	Status      string
	PaymentMode string // UPI | Card | COD | NetBanking | Wallet
}

// IsDelivered indica si el pedido fue entregado (match exacto del enum).
func (o Order) IsDelivered() bool { return o.Status == OrderStatusDelivered }

// IsCancelled indica si el pedido fue cancelado.
func (o Order) IsCancelled() bool { return o.Status == OrderStatusCancelled }
