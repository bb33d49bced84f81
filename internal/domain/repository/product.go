package repository

import (
	"context"

	"github.com/zoombxu/surplus/internal/domain/model"
)

// ProductRepository describes catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}
