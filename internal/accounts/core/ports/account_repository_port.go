package ports

import (
	"context"
	"errors"
	"time"

	"peakdash-service/internal/accounts/core/domain"
)

var ErrEmailTaken = errors.New("email address is already in use")

type AccountRepositoryPort interface {
	// CreateAccount stores the account and its profile document atomically.
	// Returns ErrEmailTaken when the e-mail already exists.
	CreateAccount(ctx context.Context, a *domain.Account) error

	// GetAccountByEmail returns (nil, nil) when no account matches.
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type SessionRevocationPort interface {
	RevokeSession(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsSessionRevoked(ctx context.Context, tokenID string) (bool, error)
}
