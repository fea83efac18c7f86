package commands

import (
	"context"
	"errors"

	"sepulka/internal/core/ports"
	"sepulka/internal/pkg/errs"

	"go.uber.org/zap"
)

const (
	badCredentialsReason = "unable to login with provided credentials"
	inactiveUserReason   = "user account is not active"
)

// LoginCommandHandler verifies credentials and issues a token. Unknown
// usernames and wrong passwords are reported identically.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
	logger     *zap.Logger
}

func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	logger *zap.Logger,
) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, hasher: hasher, issuer: issuer, logger: logger}
}

func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (ports.Token, error) {
	if err := command.Validate(); err != nil {
		return ports.Token{}, err
	}

	uow := h.uowFactory.Create()
	u, err := uow.UserRepository().GetByUsername(ctx, command.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Warn("login failed", zap.String("username", command.Username()), zap.String("reason", "unknown user"))
		return ports.Token{}, errs.NewAuthenticationError(badCredentialsReason)
	}
	if err != nil {
		return ports.Token{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), command.Password()); err != nil {
		h.logger.Warn("login failed", zap.String("username", u.Username()), zap.String("reason", "password mismatch"))
		return ports.Token{}, errs.NewAuthenticationErrorWithCause(badCredentialsReason, err)
	}

	if !u.IsActive() {
		return ports.Token{}, errs.NewAuthenticationError(inactiveUserReason)
	}

	token, err := h.issuer.Issue(u)
	if err != nil {
		return ports.Token{}, err
	}

	h.logger.Info("user logged in", zap.String("username", u.Username()), zap.String("token_id", token.ID))
	return token, nil
}
