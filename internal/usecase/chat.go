package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/model"
	"github.com/zoombxu/surplus/internal/domain/repository"
	"github.com/zoombxu/surplus/internal/metrics"
	"github.com/zoombxu/surplus/internal/notify"
	"github.com/zoombxu/surplus/internal/pkg/auth"
)

// ChatUseCase encapsulates the customer/admin chat transcript.
type ChatUseCase struct {
	messages repository.MessageRepository
	hub      *notify.Hub
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// NewChatUseCase constructs ChatUseCase.
func NewChatUseCase(messages repository.MessageRepository, hub *notify.Hub, m *metrics.Metrics, logger *slog.Logger) *ChatUseCase {
	return &ChatUseCase{
		messages: messages,
		hub:      hub,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Send appends a message from the authenticated principal. Customers
// always write to the admin; the admin addresses a customer phone.
func (u *ChatUseCase) Send(ctx context.Context, claims auth.Claims, recipient, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainErrors.ErrEmptyMessage
	}

	message := &model.Message{
		ID:        uuid.NewString(),
		CreatedAt: u.now().UTC(),
		Content:   content,
	}

	if claims.Role == auth.RoleAdmin {
		if !ValidatePhone(recipient) {
			return nil, domainErrors.ErrInvalidCustomer
		}
		message.SenderID = model.AdminParticipant
		message.SenderName = claims.Name
		message.IsAdmin = true
		message.RecipientID = recipient
	} else {
		message.SenderID = claims.Subject
		message.SenderName = claims.Name
		message.RecipientID = model.AdminParticipant
	}

	if err := u.messages.Append(ctx, message); err != nil {
		return nil, err
	}

	u.metrics.MessagesSent.WithLabelValues(claims.Role).Inc()
	u.hub.Publish(notify.Event{Kind: notify.KindMessage, Action: notify.ActionCreate, Message: message})
	return message, nil
}

// Transcript returns the full conversation involving participant,
// oldest first.
func (u *ChatUseCase) Transcript(ctx context.Context, participant string) ([]model.Message, error) {
	return u.messages.Transcript(ctx, participant)
}

// Sessions lists active customer conversations for the admin inbox.
func (u *ChatUseCase) Sessions(ctx context.Context) ([]model.ChatSession, error) {
	return u.messages.Sessions(ctx)
}
