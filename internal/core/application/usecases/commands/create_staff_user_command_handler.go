package commands

import (
	"context"
	"errors"

	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/ports"
	"sepulka/internal/pkg/errs"

	"go.uber.org/zap"
)

// CreateStaffUserCommandHandler is idempotent: an existing user with the
// same name is promoted to staff, its password is left alone.
type CreateStaffUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	logger     *zap.Logger
}

func NewCreateStaffUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	logger *zap.Logger,
) CreateStaffUserCommandHandler {
	return CreateStaffUserCommandHandler{uowFactory: uowFactory, hasher: hasher, logger: logger}
}

func (h CreateStaffUserCommandHandler) Handle(ctx context.Context, command CreateStaffUserCommand) error {
	if err := command.Validate(); err != nil {
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
	existing, err := repo.GetByUsername(ctx, command.Username())
	switch {
	case err == nil:
		if existing.IsStaff() {
			h.logger.Debug("staff user already present", zap.String("username", existing.Username()))
			return nil
		}
		existing.GrantStaff()
		if err = repo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		hash, hashErr := h.hasher.Hash(command.Password())
		if hashErr != nil {
			return hashErr
		}
		u, newErr := user.NewUser(command.Username(), command.Email(), hash, command.Role())
		if newErr != nil {
			return newErr
		}
		u.GrantStaff()
		if err = repo.Add(ctx, u); err != nil {
			return err
		}
	default:
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("staff user ensured", zap.String("username", command.Username()))
	return nil
}
