package entity

import "time"

// Estados de envío conocidos.
const (
	ShipmentStatusDelivered = "Delivered"
	ShipmentStatusInTransit = "In Transit"
	ShipmentStatusDelayed   = "Delayed"
)

// Shipment representa el despacho de un pedido desde una bodega.
// DeliveryDate es cero si el envío aún no se entrega.
type Shipment struct {
	ID             string
	OrderID        string
	WarehouseID    string
	DispatchDate   time.Time
	DeliveryDate   time.Time
	DeliveryStatus string
}

// LeadDays días calendario entre despacho y entrega. Devuelve -1 si el envío
// no tiene fecha de entrega.
func (s Shipment) LeadDays() int {
	if s.DeliveryDate.IsZero() {
		return -1
	}
	return int(s.DeliveryDate.Sub(s.DispatchDate).Hours() / 24)
}
