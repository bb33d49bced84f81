package repository

import (
	"context"
	"time"

	"github.com/zoombxu/surplus/internal/domain/model"
)

// ProfileRepository manages cancellation-penalty profiles keyed by phone.
type ProfileRepository interface {
	GetByPhone(ctx context.Context, phone string) (*model.Profile, error)
	// CreateIfAbsent lazily creates an empty profile on first read.
	CreateIfAbsent(ctx context.Context, phone string) (*model.Profile, error)
	Update(ctx context.Context, phone string, cancellationCount int, penaltyUntil *time.Time) (*model.Profile, error)
}
