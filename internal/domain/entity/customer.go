package entity

import "time"

// Customer representa un cliente registrado de la tienda.
type Customer struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	City         string
	RegisteredAt time.Time
}
