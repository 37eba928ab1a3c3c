package repository

import "time"

// Order represents an order row with its shipments and line items attached.
type Order struct {
	ID           string
	Reference    string
	CustomerName string
	Email        string
	Stage        string
	TotalCents   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Shipping     []Shipment
	Items        []OrderItem
}

// Shipment represents one shipment record of an order. Fulfillment only ever
// inspects and mutates the first shipment of an order.
type Shipment struct {
	ID             string
	OrderID        string
	Carrier        string
	TrackingNumber *string
	Packed         bool
	Shipped        bool
	UpdatedAt      time.Time
}

// OrderItem represents a purchased product variant.
type OrderItem struct {
	ID         string
	OrderID    string
	ProductID  string
	VariantID  string
	Title      string
	Quantity   int
	PriceCents int64
}

// MediaRecord represents a stored product image reference.
type MediaRecord struct {
	ID        string
	ProductID string
	VariantID *string
	Priority  int
	URL       string
}
