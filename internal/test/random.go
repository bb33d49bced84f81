package test

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zoombxu/surplus/internal/domain/model"
)

// RandomPhone returns a random 11-digit mobile number.
func RandomPhone() string {
	return fmt.Sprintf("09%09d", rand.Intn(1_000_000_000))
}

// PendingOrder builds an order in the pending state for the given phone.
func PendingOrder(id, phone string) *model.Order {
	return &model.Order{
		ID:            id,
		CreatedAt:     time.Now().UTC(),
		CustomerName:  "Test Customer",
		CustomerPhone: phone,
		Items: []model.OrderItem{
			{Name: "Alternator", Quantity: 1, Price: "₱2,500"},
		},
		TotalPrice: "₱2,500",
		Status:     model.OrderStatusPending,
	}
}
