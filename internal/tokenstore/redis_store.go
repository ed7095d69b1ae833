package tokenstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "revoked_token:"

// RevocationStore keeps a Redis denylist of tokens invalidated by logout.
// Entries expire together with the token itself, so the list never grows
// past the set of still-valid tokens.
type RevocationStore struct {
	client *redis.Client
}

func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks the token invalid for the remainder of its lifetime.
func (s *RevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to deny.
		return nil
	}
	return s.client.Set(ctx, revokedPrefix+token, "1", ttl).Err()
}

func (s *RevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	count, err := s.client.Exists(ctx, revokedPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
