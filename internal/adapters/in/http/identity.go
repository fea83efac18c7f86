package http

import (
	"context"
	"errors"
	"strings"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/core/ports"
	"sepulka/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	actorKey  = "sepulka.actor"
	claimsKey = "sepulka.token_claims"
)

// UserLookup loads the account a token was issued for.
type UserLookup interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}

// Identity resolves the caller of every request into a policy.Actor.
//
// A request without an Authorization header runs as the anonymous actor.
// A header that is malformed, or carries an invalid, expired or revoked
// token, or names an inactive or missing user, is rejected with 401. The
// user is reloaded from storage on each request so role and staff changes
// apply immediately.
func Identity(
	issuer ports.TokenIssuer,
	revocations ports.TokenRevocationStore,
	users UserLookup,
	logger *zap.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				c.Set(actorKey, policy.Anonymous())
				return next(c)
			}

			raw, err := bearer(header)
			if err != nil {
				logger.Warn("malformed authorization header", zap.Error(err))
				return err
			}

			ctx := c.Request().Context()
			claims, err := issuer.Parse(raw)
			if err != nil {
				logger.Warn("rejected token", zap.Error(err))
				return err
			}

			revoked, err := revocations.IsRevoked(ctx, claims.TokenID)
			if err != nil {
				return err
			}
			if revoked {
				logger.Warn("revoked token presented", zap.String("token_id", claims.TokenID))
				return errs.NewAuthenticationError("token has been revoked")
			}

			u, err := users.Get(ctx, claims.UserID)
			if errors.Is(err, errs.ErrObjectNotFound) {
				logger.Warn("token of a removed user", zap.String("user_id", claims.UserID.String()))
				return errs.NewAuthenticationErrorWithCause("user not found", err)
			}
			if err != nil {
				return err
			}
			if !u.IsActive() {
				return errs.NewAuthenticationError("user account is not active")
			}

			c.Set(actorKey, policy.AuthenticatedAs(u))
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// bearer extracts the credential from "Bearer <token>" or "Token <token>".
func bearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || token == "" || strings.Contains(token, " ") {
		return "", errs.NewAuthenticationError("invalid authorization header")
	}
	if !strings.EqualFold(scheme, "Bearer") && !strings.EqualFold(scheme, "Token") {
		return "", errs.NewAuthenticationError("unsupported authorization scheme")
	}
	return token, nil
}

// ActorFrom returns the caller resolved by Identity, or the anonymous actor.
func ActorFrom(c echo.Context) policy.Actor {
	if actor, ok := c.Get(actorKey).(policy.Actor); ok {
		return actor
	}
	return policy.Anonymous()
}

// ClaimsFrom returns the verified token of the request, if any.
func ClaimsFrom(c echo.Context) (ports.TokenClaims, bool) {
	claims, ok := c.Get(claimsKey).(ports.TokenClaims)
	return claims, ok
}
