package ports

import (
	"context"
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"
)

// Token is an issued bearer credential.
type Token struct {
	Raw       string
	ID        string
	ExpiresAt time.Time
}

// TokenClaims are the verified contents of a bearer token.
type TokenClaims struct {
	TokenID   string
	UserID    kernel.UUID
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Issue(u *user.User) (Token, error)

	// Parse verifies signature and expiry. Failures are AuthenticationErrors.
	Parse(raw string) (TokenClaims, error)
}

// TokenRevocationStore remembers logged out tokens until they expire.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
