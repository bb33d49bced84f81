package repository

import (
	"context"

	"github.com/zoombxu/surplus/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByCustomer(ctx context.Context, phone string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	// UpdateStatus applies from -> to only when the stored status still
	// equals from; a concurrent change surfaces as ErrConflict.
	UpdateStatus(ctx context.Context, id string, from, to model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id string) error
}
