package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/analytics-pro/internal/domain/entity"
)

func TestOrderItem_Revenue(t *testing.T) {
	item := entity.OrderItem{Quantity: 3, UnitPrice: decimal.NewFromInt(799)}
	assert.Equal(t, "2397", item.Revenue().String())
}

func TestShipment_LeadDays(t *testing.T) {
	entregado := entity.Shipment{
		DispatchDate: time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC),
		DeliveryDate: time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 7, entregado.LeadDays())

	enTransito := entity.Shipment{
		DispatchDate: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, -1, enTransito.LeadDays(), "sin fecha de entrega no hay lead time")
}

func TestOrder_ComparacionExactaDeEstado(t *testing.T) {
	assert.True(t, entity.Order{Status: "Delivered"}.IsDelivered())
	assert.False(t, entity.Order{Status: "delivered"}.IsDelivered())
	assert.False(t, entity.Order{Status: "DELIVERED"}.IsDelivered())
}
