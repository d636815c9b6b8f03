package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/analytics-pro/internal/domain/entity"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// SampleDataset dataset simulado de la tienda: el mismo que inserta cmd/seed
// en PostgreSQL. Cubre los casos que el catálogo necesita ejercitar: cliente
// recurrente, pedidos cancelados/devueltos/pendientes, pedidos en fin de
// semana, SKUs agotados con ventas históricas y envíos dentro y fuera del SLA.
func SampleDataset() Dataset {
	return Dataset{
		Customers: []entity.Customer{
			{ID: "C001", Name: "Ravi Kumar", Email: "ravi.kumar@example.com", Phone: "9876500001", City: "Bangalore", RegisteredAt: d(2023, time.March, 12)},
			{ID: "C002", Name: "Ananya Sharma", Email: "ananya.sharma@example.com", Phone: "9876500002", City: "Delhi", RegisteredAt: d(2023, time.May, 2)},
			{ID: "C003", Name: "Vikram Patel", Email: "vikram.patel@example.com", Phone: "9876500003", City: "Mumbai", RegisteredAt: d(2023, time.August, 19)},
			{ID: "C004", Name: "Meera Iyer", Email: "meera.iyer@example.com", Phone: "9876500004", City: "Chennai", RegisteredAt: d(2023, time.November, 7)},
			{ID: "C005", Name: "Arjun Reddy", Email: "arjun.reddy@example.com", Phone: "9876500005", City: "Hyderabad", RegisteredAt: d(2024, time.January, 21)},
		},
		Products: []entity.Product{
			{ID: "P001", Name: "Smartphone X", Category: "Electronics", Brand: "Nova", CostPrice: money(45_000), SellingPrice: money(52_000)},
			{ID: "P002", Name: "Laptop Pro 14", Category: "Electronics", Brand: "Orbit", CostPrice: money(60_000), SellingPrice: money(72_000)},
			{ID: "P003", Name: "Running Shoes", Category: "Footwear", Brand: "Sprint", CostPrice: money(1_800), SellingPrice: money(2_999)},
			{ID: "P004", Name: "Coffee Maker", Category: "Appliances", Brand: "BrewMate", CostPrice: money(2_500), SellingPrice: money(3_999)},
			{ID: "P005", Name: "Wireless Headphones", Category: "Electronics", Brand: "Nova", CostPrice: money(1_200), SellingPrice: money(1_999)},
			{ID: "P006", Name: "Desk Lamp", Category: "Home", Brand: "Lumo", CostPrice: money(400), SellingPrice: money(799)},
		},
		Warehouses: []entity.Warehouse{
			{ID: "W001", Name: "Bangalore Central", City: "Bangalore", Capacity: 10_000},
			{ID: "W002", Name: "Delhi North", City: "Delhi", Capacity: 8_000},
		},
		Inventory: []entity.InventoryLevel{
			{ID: "INV01", ProductID: "P001", WarehouseID: "W001", Quantity: 25, UpdatedAt: d(2024, time.March, 1)},
			{ID: "INV02", ProductID: "P001", WarehouseID: "W002", Quantity: 10, UpdatedAt: d(2024, time.March, 1)},
			{ID: "INV03", ProductID: "P002", WarehouseID: "W001", Quantity: 0, UpdatedAt: d(2024, time.March, 5)}, // agotado con ventas históricas
			{ID: "INV04", ProductID: "P003", WarehouseID: "W002", Quantity: 120, UpdatedAt: d(2024, time.February, 20)},
			{ID: "INV05", ProductID: "P004", WarehouseID: "W002", Quantity: 40, UpdatedAt: d(2024, time.February, 25)},
			{ID: "INV06", ProductID: "P005", WarehouseID: "W001", Quantity: 200, UpdatedAt: d(2024, time.March, 2)},
			{ID: "INV07", ProductID: "P006", WarehouseID: "W002", Quantity: 0, UpdatedAt: d(2024, time.March, 8)}, // agotado
		},
		Orders: []entity.Order{
			{ID: "O1001", CustomerID: "C001", OrderDate: d(2024, time.January, 5), Status: entity.OrderStatusDelivered, PaymentMode: "UPI"},
			{ID: "O1002", CustomerID: "C002", OrderDate: d(2024, time.January, 6), Status: entity.OrderStatusDelivered, PaymentMode: "Card"}, // sábado
			{ID: "O1003", CustomerID: "C001", OrderDate: d(2024, time.February, 10), Status: entity.OrderStatusDelivered, PaymentMode: "UPI"},
			{ID: "O1004", CustomerID: "C003", OrderDate: d(2024, time.February, 12), Status: entity.OrderStatusCancelled, PaymentMode: "COD"},
			{ID: "O1005", CustomerID: "C004", OrderDate: d(2024, time.February, 15), Status: entity.OrderStatusDelivered, PaymentMode: "NetBanking"},
			{ID: "O1006", CustomerID: "C002", OrderDate: d(2024, time.March, 1), Status: entity.OrderStatusReturned, PaymentMode: "Card"},
			{ID: "O1007", CustomerID: "C005", OrderDate: d(2024, time.March, 3), Status: entity.OrderStatusDelivered, PaymentMode: "Wallet"}, // domingo
			{ID: "O1008", CustomerID: "C003", OrderDate: d(2024, time.March, 10), Status: entity.OrderStatusPending, PaymentMode: "COD"},
		},
		OrderItems: []entity.OrderItem{
			{ID: "LI01", OrderID: "O1001", ProductID: "P001", Quantity: 1, UnitPrice: money(52_000)},
			{ID: "LI02", OrderID: "O1001", ProductID: "P005", Quantity: 2, UnitPrice: money(1_999)},
			{ID: "LI03", OrderID: "O1002", ProductID: "P002", Quantity: 1, UnitPrice: money(72_000)},
			{ID: "LI04", OrderID: "O1003", ProductID: "P003", Quantity: 2, UnitPrice: money(2_999)},
			{ID: "LI05", OrderID: "O1004", ProductID: "P004", Quantity: 1, UnitPrice: money(3_999)},
			{ID: "LI06", OrderID: "O1005", ProductID: "P002", Quantity: 1, UnitPrice: money(70_000)},
			{ID: "LI07", OrderID: "O1006", ProductID: "P005", Quantity: 1, UnitPrice: money(1_999)},
			{ID: "LI08", OrderID: "O1007", ProductID: "P006", Quantity: 3, UnitPrice: money(799)},
			{ID: "LI09", OrderID: "O1007", ProductID: "P001", Quantity: 1, UnitPrice: money(51_000)},
			{ID: "LI10", OrderID: "O1008", ProductID: "P003", Quantity: 1, UnitPrice: money(2_999)},
		},
		Shipments: []entity.Shipment{
			{ID: "S001", OrderID: "O1001", WarehouseID: "W001", DispatchDate: d(2024, time.January, 6), DeliveryDate: d(2024, time.January, 9), DeliveryStatus: entity.ShipmentStatusDelivered},
			{ID: "S002", OrderID: "O1002", WarehouseID: "W001", DispatchDate: d(2024, time.January, 7), DeliveryDate: d(2024, time.January, 14), DeliveryStatus: entity.ShipmentStatusDelivered}, // 7 días: tardío
			{ID: "S003", OrderID: "O1003", WarehouseID: "W002", DispatchDate: d(2024, time.February, 11), DeliveryDate: d(2024, time.February, 16), DeliveryStatus: entity.ShipmentStatusDelivered}, // 5 días: justo en el SLA
			{ID: "S004", OrderID: "O1005", WarehouseID: "W001", DispatchDate: d(2024, time.February, 16), DeliveryDate: d(2024, time.February, 20), DeliveryStatus: entity.ShipmentStatusDelivered},
			{ID: "S005", OrderID: "O1006", WarehouseID: "W002", DispatchDate: d(2024, time.March, 2), DeliveryDate: d(2024, time.March, 8), DeliveryStatus: entity.ShipmentStatusDelivered}, // 6 días: tardío
			{ID: "S006", OrderID: "O1007", WarehouseID: "W002", DispatchDate: d(2024, time.March, 4), DeliveryStatus: entity.ShipmentStatusInTransit},
			{ID: "S007", OrderID: "O1008", WarehouseID: "W001", DispatchDate: d(2024, time.March, 11), DeliveryStatus: entity.ShipmentStatusInTransit},
		},
		Vendors: []entity.Vendor{
			{ID: "V001", Name: "Nova Supplies", City: "Mumbai"},
			{ID: "V002", Name: "Orbit Distribution", City: "Delhi"},
		},
	}
}
