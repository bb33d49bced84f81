package usecase

import (
	"strings"
	"unicode"

	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/model"
)

// ValidatePhone checks a customer phone number: an optional leading plus
// followed by 7 to 15 digits.
func ValidatePhone(phone string) bool {
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < 7 || len(phone) > 15 {
		return false
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidateCustomer checks the identity fields attached to an order or chat.
func ValidateCustomer(name, phone string) error {
	if strings.TrimSpace(name) == "" || !ValidatePhone(phone) {
		return domainErrors.ErrInvalidCustomer
	}
	return nil
}

// ValidateItems checks checkout line items.
func ValidateItems(items []model.OrderItem) error {
	if len(items) == 0 {
		return domainErrors.ErrEmptyOrder
	}
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 {
			return domainErrors.ErrInvalidItems
		}
	}
	return nil
}
