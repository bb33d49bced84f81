package model

import "time"

// OrderStatus describes order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusCompleted  OrderStatus = "completed"
)

// KnownStatus reports whether s is one of the four lifecycle states.
func KnownStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

// OrderItem is a snapshot of a catalog line taken at checkout time.
// It is never a live reference back to the product record.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	ImageRef string `json:"imageRef,omitempty"`
}

// Order describes a customer checkout request.
type Order struct {
	ID            string
	CreatedAt     time.Time
	CustomerName  string
	CustomerPhone string
	Items         []OrderItem
	TotalPrice    string
	Status        OrderStatus
}
