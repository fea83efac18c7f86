package commands

import (
	"context"

	"sepulka/internal/core/domain/policy"

	"go.uber.org/zap"
)

// DeleteUserCommandHandler removes a user. A user still referenced by an
// order cannot be removed and the repository reports it as invalid.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	logger     *zap.Logger
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory, logger *zap.Logger) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, command DeleteUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := policy.RequireAuthenticated(actor); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	target, err := repo.GetByUsername(ctx, command.Target())
	if err != nil {
		return err
	}

	if err = policy.AuthorizeSelf(actor, policy.DestroyUser, target); err != nil {
		return err
	}

	if err = repo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("user deleted",
		zap.String("username", target.Username()),
		zap.String("by", actor.Username()),
	)
	return nil
}
