// Package auth holds the credential adapters: signed bearer tokens and
// password hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/ports"
	"sepulka/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrSecretIsEmpty    = errors.New("jwt secret is empty")
	ErrTTLIsNotPositive = errors.New("jwt ttl must be positive")
)

// Claims are the registered claims plus the role at issue time. The role is
// informational: every request reloads the user.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWTIssuer issues and verifies HS512 tokens.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret, issuer string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrSecretIsEmpty
	}
	if ttl <= 0 {
		return nil, ErrTTLIsNotPositive
	}
	return &JWTIssuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for u with a fresh token id.
func (i *JWTIssuer) Issue(u *user.User) (ports.Token, error) {
	if u == nil {
		return ports.Token{}, errs.NewValueIsRequiredError("user")
	}

	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Subject:   u.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: u.Role().String(),
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(i.secret)
	if err != nil {
		return ports.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return ports.Token{Raw: raw, ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Parse verifies signature, issuer and expiry and returns the claims.
func (i *JWTIssuer) Parse(raw string) (ports.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.TokenClaims{}, errs.NewAuthenticationErrorWithCause("token has expired", err)
		}
		return ports.TokenClaims{}, errs.NewAuthenticationErrorWithCause("invalid token", err)
	}
	if !token.Valid || claims.ID == "" {
		return ports.TokenClaims{}, errs.NewAuthenticationError("invalid token")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.TokenClaims{}, errs.NewAuthenticationErrorWithCause("invalid token subject", err)
	}

	return ports.TokenClaims{
		TokenID:   claims.ID,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
