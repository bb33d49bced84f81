package usecase

import (
	"context"
	"log/slog"
	"strings"

	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/repository"
	"github.com/zoombxu/surplus/internal/pkg/auth"
)

// AuthUseCase issues and validates principal tokens. Customers identify
// with name and phone; the admin logs in with the configured password.
type AuthUseCase struct {
	profiles  repository.ProfileRepository
	strategy  auth.Strategy
	hasher    auth.PasswordHasher
	adminHash string
	logger    *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase, hashing the admin password once
// up front so the plaintext is not retained.
func NewAuthUseCase(
	profiles repository.ProfileRepository,
	strategy auth.Strategy,
	hasher auth.PasswordHasher,
	adminPassword string,
	logger *slog.Logger,
) (*AuthUseCase, error) {
	adminHash, err := hasher.Hash(adminPassword)
	if err != nil {
		return nil, err
	}
	return &AuthUseCase{
		profiles:  profiles,
		strategy:  strategy,
		hasher:    hasher,
		adminHash: adminHash,
		logger:    logger,
	}, nil
}

// Identify authenticates a customer by name and phone. There is no
// password; the phone number is the identity. The penalty profile is
// created lazily on first contact.
func (u *AuthUseCase) Identify(ctx context.Context, name, phone string) (string, auth.Claims, error) {
	name = strings.TrimSpace(name)
	if err := ValidateCustomer(name, phone); err != nil {
		return "", auth.Claims{}, err
	}

	if _, err := u.profiles.CreateIfAbsent(ctx, phone); err != nil {
		return "", auth.Claims{}, err
	}

	claims := auth.Claims{Subject: phone, Role: auth.RoleCustomer, Name: name}
	token, err := u.strategy.IssueToken(claims)
	if err != nil {
		return "", auth.Claims{}, err
	}
	return token, claims, nil
}

// AdminLogin checks the dashboard password and issues an admin token.
func (u *AuthUseCase) AdminLogin(password string) (string, auth.Claims, error) {
	if err := u.hasher.Compare(u.adminHash, password); err != nil {
		return "", auth.Claims{}, domainErrors.ErrInvalidCredentials
	}

	claims := auth.Claims{Subject: "admin", Role: auth.RoleAdmin, Name: "Admin"}
	token, err := u.strategy.IssueToken(claims)
	if err != nil {
		return "", auth.Claims{}, err
	}
	return token, claims, nil
}

// Authenticate resolves a token back into claims.
func (u *AuthUseCase) Authenticate(token string) (auth.Claims, error) {
	claims, err := u.strategy.ParseToken(token)
	if err != nil {
		return auth.Claims{}, domainErrors.ErrInvalidCredentials
	}
	return claims, nil
}
