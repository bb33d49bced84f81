package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/zoombxu/surplus/internal/config"
	"github.com/zoombxu/surplus/internal/domain/repository"
	"github.com/zoombxu/surplus/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(NewOrderUseCase),
	fx.Provide(NewChatUseCase),
	fx.Provide(NewCatalogUseCase),
	fx.Provide(newAuthUseCase),
)

type authParams struct {
	fx.In

	Profiles repository.ProfileRepository
	Strategy auth.Strategy
	Hasher   auth.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

func newAuthUseCase(p authParams) (*AuthUseCase, error) {
	return NewAuthUseCase(p.Profiles, p.Strategy, p.Hasher, p.Config.AdminPassword, p.Logger)
}
