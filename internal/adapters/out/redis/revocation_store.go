// Package redis keeps logged out token ids until their tokens expire.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const defaultKeyPrefix = "sepulka:revoked:"

var ErrTokenIDIsEmpty = errors.New("token id is empty")

// RevocationStore is a ports.TokenRevocationStore on top of a redis client.
// Each revoked token id is one key whose TTL matches the token's remaining
// lifetime, so expired entries disappear on their own.
type RevocationStore struct {
	client *redis.Client
	prefix string
}

func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client, prefix: defaultKeyPrefix}
}

// WithPrefix returns a store writing under another key namespace.
func (s *RevocationStore) WithPrefix(prefix string) *RevocationStore {
	return &RevocationStore{client: s.client, prefix: prefix}
}

// Revoke records tokenID for ttl. A non-positive ttl means the token is
// already expired and nothing is written.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return ErrTokenIDIsEmpty
	}
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, s.key(tokenID), 1, ttl).Err()
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, ErrTokenIDIsEmpty
	}
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RevocationStore) key(tokenID string) string {
	return s.prefix + tokenID
}
