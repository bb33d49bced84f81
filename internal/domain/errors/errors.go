package errors

import (
	"errors"
	"fmt"

	"github.com/zoombxu/surplus/internal/domain/model"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidItems       = errors.New("invalid order items")
	ErrInvalidCustomer    = errors.New("invalid customer identity")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrEmptyMessage       = errors.New("empty message")
	ErrConflict           = errors.New("conflicting update")

	// ErrPenaltyNotApplied reports a cancellation whose order update committed
	// but whose profile penalty write failed. The order stays cancelled; the
	// penalty is not rolled forward blindly on retry.
	ErrPenaltyNotApplied = errors.New("cancellation partially applied")
)

// OrderingRestrictedError rejects a checkout from a customer inside an
// active penalty window. Expected, user-facing.
type OrderingRestrictedError struct {
	RemainingMinutes int
}

func (e *OrderingRestrictedError) Error() string {
	return fmt.Sprintf("ordering restricted for %d more minutes", e.RemainingMinutes)
}

// InvalidTransitionError rejects a status change the lifecycle does not
// permit. Indicates the caller offered an action for a stale status.
type InvalidTransitionError struct {
	From model.OrderStatus
	To   model.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// NotCancellableError rejects self-service cancellation of an order that
// already left the pending state. Expected, user-facing.
type NotCancellableError struct {
	Status model.OrderStatus
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("order in status %s cannot be cancelled", e.Status)
}
