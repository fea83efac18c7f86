package commands

import (
	"context"

	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/core/ports"

	"go.uber.org/zap"
)

// UpdateUserCommandHandler applies a profile change. Staff may change any
// user, everyone else only themselves.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	logger     *zap.Logger
}

func NewUpdateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	logger *zap.Logger,
) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{uowFactory: uowFactory, hasher: hasher, logger: logger}
}

func (h UpdateUserCommandHandler) Handle(ctx context.Context, command UpdateUserCommand) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	actor := command.Actor()
	if err := policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	target, err := repo.GetByUsername(ctx, command.Target())
	if err != nil {
		return nil, err
	}

	if err = policy.AuthorizeSelf(actor, policy.UpdateUser, target); err != nil {
		return nil, err
	}

	username, email, role := target.Username(), target.Email(), target.Role()
	if v := command.Username(); v != nil {
		username = *v
	}
	if v := command.Email(); v != nil {
		email = *v
	}
	if v := command.Role(); v != nil {
		role = *v
	}
	if err = target.ChangeProfile(username, email, role); err != nil {
		return nil, err
	}

	if v := command.Password(); v != nil {
		hash, hashErr := h.hasher.Hash(*v)
		if hashErr != nil {
			return nil, hashErr
		}
		if err = target.ChangePasswordHash(hash); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("user updated",
		zap.String("username", target.Username()),
		zap.String("by", actor.Username()),
	)
	return target, nil
}
