// Package revocation implements the token denylist on top of Redis.
//
// Entries live under "revoked:<tokenID>" with a TTL no shorter than the
// refresh token lifetime, so a denylist entry never expires before the
// tokens it blocks would have expired on their own.
package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/brigere/shield-api/pkg/constant"
	"github.com/redis/go-redis/v9"
)

type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Revoke marks the token ID as revoked. Overwriting an existing entry is
// harmless.
func (s *Store) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, constant.RevocationKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to record revocation for token %s: %w", tokenID, err)
	}

	return nil
}

// IsRevoked reports whether the token ID is on the denylist. A missing key,
// including one whose TTL has elapsed, means not revoked.
func (s *Store) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, constant.RevocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revocation for token %s: %w", tokenID, err)
	}

	return n > 0, nil
}
