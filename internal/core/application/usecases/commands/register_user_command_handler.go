package commands

import (
	"context"

	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/core/ports"

	"go.uber.org/zap"
)

type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	logger     *zap.Logger
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	logger *zap.Logger,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory, hasher: hasher, logger: logger}
}

// Handle creates an active, non-staff user. A taken username is a ConflictError.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if err := policy.Authorize(command.Actor(), policy.RegisterUser); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(command.Username(), command.Email(), hash, command.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("user registered",
		zap.String("username", u.Username()),
		zap.Stringer("role", u.Role()),
	)
	return u, nil
}
