package repository

import (
	"context"

	"github.com/zoombxu/surplus/internal/domain/model"
)

// MessageRepository is the append-only chat transcript log.
type MessageRepository interface {
	Append(ctx context.Context, message *model.Message) error
	// Transcript returns all messages sent by or addressed to participant,
	// oldest first.
	Transcript(ctx context.Context, participant string) ([]model.Message, error)
	// Sessions lists distinct customer conversations, most recent first.
	Sessions(ctx context.Context) ([]model.ChatSession, error)
}
