package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/brigere/shield-api/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_revocation_store.go -package=mocks github.com/brigere/shield-api/internal/auth/domain RevocationStore

import (
	"context"
	"time"
)

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user exists for the email so the
	// service layer can answer unknown-user and wrong-password uniformly.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, email, passwordHash string) (*User, error)
}

// RevocationStore is the TTL-backed denylist keyed by token ID.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
