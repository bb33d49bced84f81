package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/lifecycle"
	"github.com/zoombxu/surplus/internal/domain/model"
	"github.com/zoombxu/surplus/internal/domain/repository"
	"github.com/zoombxu/surplus/internal/metrics"
	"github.com/zoombxu/surplus/internal/notify"
)

// OrderUseCase encapsulates checkout, cancellation and lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	profiles repository.ProfileRepository
	messages repository.MessageRepository
	hub      *notify.Hub
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	profiles repository.ProfileRepository,
	messages repository.MessageRepository,
	hub *notify.Hub,
	m *metrics.Metrics,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		profiles: profiles,
		messages: messages,
		hub:      hub,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Place validates a checkout request and creates a pending order. A
// customer inside an active penalty window is rejected with
// OrderingRestrictedError before anything is written.
func (u *OrderUseCase) Place(ctx context.Context, customerName, phone string, items []model.OrderItem, totalPrice string) (*model.Order, error) {
	if err := ValidateCustomer(customerName, phone); err != nil {
		return nil, err
	}
	if err := ValidateItems(items); err != nil {
		return nil, err
	}
	if strings.TrimSpace(totalPrice) == "" {
		return nil, domainErrors.ErrInvalidItems
	}

	profile, err := u.profiles.CreateIfAbsent(ctx, phone)
	if err != nil {
		return nil, err
	}
	if banned, remaining := lifecycle.Ban(profile, u.now()); banned {
		return nil, &domainErrors.OrderingRestrictedError{RemainingMinutes: remaining}
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		CreatedAt:     u.now().UTC(),
		CustomerName:  customerName,
		CustomerPhone: phone,
		Items:         items,
		TotalPrice:    totalPrice,
		Status:        model.OrderStatusPending,
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	u.metrics.OrdersPlaced.Inc()
	u.hub.Publish(notify.Event{Kind: notify.KindOrder, Action: notify.ActionCreate, Order: order})
	return order, nil
}

// ListForCustomer returns the customer's orders, newest first.
func (u *OrderUseCase) ListForCustomer(ctx context.Context, phone string) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, phone)
}

// ListAll returns every order for the admin dashboard.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Cancel performs a customer self-service cancellation: the order moves to
// cancelled, the penalty escalates, and a note is mirrored into the chat.
//
// The order update commits first. If the penalty write then fails the
// cancelled order is returned together with ErrPenaltyNotApplied; the
// cancellation is never rolled back and the chat note is still mirrored,
// since it depends only on the committed order.
func (u *OrderUseCase) Cancel(ctx context.Context, phone, customerName, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerPhone != phone {
		return nil, domainErrors.ErrForbidden
	}
	if order.Status != model.OrderStatusPending {
		return nil, &domainErrors.NotCancellableError{Status: order.Status}
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatusPending, model.OrderStatusCancelled)
	if err != nil {
		if errors.Is(err, domainErrors.ErrConflict) {
			// Someone advanced the order between our read and the update.
			if current, readErr := u.orders.GetByID(ctx, orderID); readErr == nil {
				return nil, &domainErrors.NotCancellableError{Status: current.Status}
			}
		}
		return nil, err
	}

	u.metrics.OrdersCancelled.WithLabelValues("customer").Inc()
	u.hub.Publish(notify.Event{Kind: notify.KindOrder, Action: notify.ActionUpdate, Order: updated})

	penaltyErr := u.applyPenalty(ctx, phone)
	if penaltyErr != nil {
		u.logger.Error("penalty write failed after cancellation",
			slog.String("order", orderID), slog.String("error", penaltyErr.Error()))
	}

	u.mirrorCancellation(ctx, updated, customerName)

	if penaltyErr != nil {
		return updated, domainErrors.ErrPenaltyNotApplied
	}
	return updated, nil
}

func (u *OrderUseCase) applyPenalty(ctx context.Context, phone string) error {
	profile, err := u.profiles.CreateIfAbsent(ctx, phone)
	if err != nil {
		return err
	}
	next := lifecycle.ApplyCancellation(*profile, u.now())
	_, err = u.profiles.Update(ctx, phone, next.CancellationCount, next.PenaltyUntil)
	return err
}

// mirrorCancellation writes the cancellation note into the customer's
// chat transcript. A failure here only loses the note, so it is logged
// and swallowed.
func (u *OrderUseCase) mirrorCancellation(ctx context.Context, order *model.Order, customerName string) {
	message := &model.Message{
		ID:          uuid.NewString(),
		CreatedAt:   u.now().UTC(),
		Content:     lifecycle.CancellationNote(order),
		SenderID:    order.CustomerPhone,
		SenderName:  customerName,
		IsAdmin:     false,
		RecipientID: model.AdminParticipant,
	}
	if err := u.messages.Append(ctx, message); err != nil {
		u.logger.Error("cancellation note not mirrored",
			slog.String("order", order.ID), slog.String("error", err.Error()))
		return
	}
	u.hub.Publish(notify.Event{Kind: notify.KindMessage, Action: notify.ActionCreate, Message: message})
}

// AdvanceStatus applies an admin-driven lifecycle transition. Admin
// cancellations never touch the customer's penalty profile.
func (u *OrderUseCase) AdvanceStatus(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !model.KnownStatus(to) {
		return nil, &domainErrors.InvalidTransitionError{From: order.Status, To: to}
	}
	if _, err := lifecycle.Transition(order.Status, to); err != nil {
		return nil, err
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, order.Status, to)
	if err != nil {
		if errors.Is(err, domainErrors.ErrConflict) {
			if current, readErr := u.orders.GetByID(ctx, orderID); readErr == nil {
				return nil, &domainErrors.InvalidTransitionError{From: current.Status, To: to}
			}
		}
		return nil, err
	}

	if to == model.OrderStatusCancelled {
		u.metrics.OrdersCancelled.WithLabelValues("admin").Inc()
	}
	u.hub.Publish(notify.Event{Kind: notify.KindOrder, Action: notify.ActionUpdate, Order: updated})
	return updated, nil
}

// Delete removes an order record entirely (admin cleanup).
func (u *OrderUseCase) Delete(ctx context.Context, orderID string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := u.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	u.hub.Publish(notify.Event{Kind: notify.KindOrder, Action: notify.ActionDelete, Order: order})
	return nil
}

// ProfileFor returns the customer's penalty profile together with the
// remaining lockout minutes (zero when ordering is allowed).
func (u *OrderUseCase) ProfileFor(ctx context.Context, phone string) (*model.Profile, int, error) {
	profile, err := u.profiles.CreateIfAbsent(ctx, phone)
	if err != nil {
		return nil, 0, err
	}
	banned, remaining := lifecycle.Ban(profile, u.now())
	if !banned {
		remaining = 0
	}
	return profile, remaining, nil
}
