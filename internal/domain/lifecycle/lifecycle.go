// Package lifecycle holds the pure order-status and cancellation-penalty
// rules. It performs no I/O; callers read fresh state, apply these
// functions, and persist the results.
package lifecycle

import (
	"fmt"
	"math"
	"strings"
	"time"

	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/model"
)

// transitions enumerates every permitted status change. cancelled and
// completed are terminal: nothing ever leaves them.
var transitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:    {model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusProcessing: {model.OrderStatusCompleted, model.OrderStatusCancelled},
}

// CanTransition reports whether from -> to is a permitted status change.
// Same-status requests are not permitted, so repeated applies never stack
// side effects.
func CanTransition(from, to model.OrderStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition validates from -> to, returning the updated status or a typed
// rejection.
func Transition(from, to model.OrderStatus) (model.OrderStatus, error) {
	if !CanTransition(from, to) {
		return from, &domainErrors.InvalidTransitionError{From: from, To: to}
	}
	return to, nil
}

// PenaltyDuration returns the lockout for the Nth customer-initiated
// cancellation: 10 minutes for the first, tenfold for each one after.
func PenaltyDuration(cancellationCount int) time.Duration {
	if cancellationCount < 1 {
		return 0
	}
	minutes := 10 * math.Pow(10, float64(cancellationCount-1))
	return time.Duration(minutes * float64(time.Minute))
}

// Ban reports whether the profile is inside an active penalty window and
// how many whole minutes remain (rounded up). It must be fed a freshly
// read profile; cached state can race a just-imposed penalty.
func Ban(profile *model.Profile, now time.Time) (bool, int) {
	if profile == nil || profile.PenaltyUntil == nil || !profile.PenaltyUntil.After(now) {
		return false, 0
	}
	remaining := int(math.Ceil(profile.PenaltyUntil.Sub(now).Minutes()))
	return true, remaining
}

// ApplyCancellation returns the profile state after one more self-service
// cancellation: count incremented, penalty window restarted from now. The
// count only ever grows; there is no decay or reset.
func ApplyCancellation(profile model.Profile, now time.Time) model.Profile {
	profile.CancellationCount++
	until := now.Add(PenaltyDuration(profile.CancellationCount))
	profile.PenaltyUntil = &until
	return profile
}

// Ref derives the short display reference from an order identifier: the
// first UUID segment, uppercased.
func Ref(orderID string) string {
	head, _, _ := strings.Cut(orderID, "-")
	return strings.ToUpper(head)
}

// CancellationNote renders the message mirrored to the admin transcript
// when a customer cancels a pending order.
func CancellationNote(order *model.Order) string {
	return fmt.Sprintf(
		"Order Cancelled: REF %s\nTotal: %s\nCancellation Reason: User manually cancelled.",
		Ref(order.ID), order.TotalPrice,
	)
}
