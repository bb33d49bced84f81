package dto

import (
	"time"

	"github.com/zoombxu/surplus/internal/domain/model"
)

// ProductPayload is the admin create/update body.
type ProductPayload struct {
	Name          string   `json:"name"`
	Price         string   `json:"price"`
	OriginalPrice *string  `json:"originalPrice,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Badge         *string  `json:"badge,omitempty"`
}

// ProductResponse is the wire form of a catalog entry.
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         string    `json:"price"`
	OriginalPrice *string   `json:"originalPrice,omitempty"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Images        []string  `json:"images"`
	Category      string    `json:"category"`
	Badge         *string   `json:"badge,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToProduct converts the payload to a domain product.
func ToProduct(payload ProductPayload) *model.Product {
	return &model.Product{
		Name:          payload.Name,
		Price:         payload.Price,
		OriginalPrice: payload.OriginalPrice,
		Rating:        payload.Rating,
		ReviewCount:   payload.ReviewCount,
		Images:        payload.Images,
		Category:      payload.Category,
		Badge:         payload.Badge,
	}
}

// FromProduct converts a domain product to its wire form.
func FromProduct(product model.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Rating:        product.Rating,
		ReviewCount:   product.ReviewCount,
		Images:        product.Images,
		Category:      product.Category,
		Badge:         product.Badge,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}
