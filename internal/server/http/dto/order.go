package dto

import (
	"time"

	"github.com/zoombxu/surplus/internal/domain/model"
)

// OrderItemPayload is one checkout line.
type OrderItemPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	ImageRef string `json:"imageRef,omitempty"`
}

// PlaceOrderRequest is the checkout payload. Identity comes from the
// auth token, not the body.
type PlaceOrderRequest struct {
	Items      []OrderItemPayload `json:"items"`
	TotalPrice string             `json:"totalPrice"`
}

// OrderResponse is the wire form of an order.
type OrderResponse struct {
	ID            string             `json:"id"`
	CreatedAt     time.Time          `json:"createdAt"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []OrderItemPayload `json:"items"`
	TotalPrice    string             `json:"totalPrice"`
	Status        string             `json:"status"`
}

// StatusUpdateRequest is the admin lifecycle transition payload.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ProfileResponse reports the customer's penalty standing.
type ProfileResponse struct {
	Phone             string     `json:"phone"`
	CancellationCount int        `json:"cancellationCount"`
	PenaltyUntil      *time.Time `json:"penaltyUntil,omitempty"`
	RestrictedMinutes int        `json:"restrictedMinutes"`
}

// ToOrderItems converts payload lines to the domain form.
func ToOrderItems(items []OrderItemPayload) []model.OrderItem {
	converted := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, model.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			ImageRef: item.ImageRef,
		})
	}
	return converted
}

// FromOrder converts a domain order to its wire form.
func FromOrder(order model.Order) OrderResponse {
	items := make([]OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemPayload{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			ImageRef: item.ImageRef,
		})
	}
	return OrderResponse{
		ID:            order.ID,
		CreatedAt:     order.CreatedAt,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Items:         items,
		TotalPrice:    order.TotalPrice,
		Status:        string(order.Status),
	}
}

// CancelOrderResponse carries the cancelled order plus a warning when the
// penalty bookkeeping did not complete.
type CancelOrderResponse struct {
	OrderResponse
	Warning string `json:"warning,omitempty"`
}
