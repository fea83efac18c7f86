package commands

import (
	"context"
	"time"

	"sepulka/internal/core/domain/policy"
	"sepulka/internal/core/ports"

	"go.uber.org/zap"
)

// LogoutCommandHandler keeps the token id in the revocation store until
// the token would have expired anyway.
type LogoutCommandHandler struct {
	store  ports.TokenRevocationStore
	logger *zap.Logger
}

func NewLogoutCommandHandler(store ports.TokenRevocationStore, logger *zap.Logger) LogoutCommandHandler {
	return LogoutCommandHandler{store: store, logger: logger}
}

func (h LogoutCommandHandler) Handle(ctx context.Context, command LogoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := policy.Authorize(command.Actor(), policy.Logout); err != nil {
		return err
	}

	ttl := time.Until(command.ExpiresAt())
	if ttl <= 0 {
		return nil
	}

	if err := h.store.Revoke(ctx, command.TokenID(), ttl); err != nil {
		return err
	}

	h.logger.Info("user logged out",
		zap.String("username", command.Actor().Username()),
		zap.String("token_id", command.TokenID()),
	)
	return nil
}
