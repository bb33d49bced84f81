package model

import "time"

// Product is a catalog entry. Prices are formatted display strings set by
// the admin, not computed amounts.
type Product struct {
	ID            string
	Name          string
	Price         string
	OriginalPrice *string
	Rating        float64
	ReviewCount   int
	Images        []string
	Category      string
	Badge         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
