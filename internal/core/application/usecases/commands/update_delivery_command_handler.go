package commands

import (
	"context"

	"sepulka/internal/core/domain/policy"

	"go.uber.org/zap"
)

// UpdateDeliveryCommandHandler applies the responsible and method patches of
// an UpdateDeliveryCommand. Both are validated before either is written.
type UpdateDeliveryCommandHandler struct {
	uowFactory SepulkaUoWFactory
	logger     *zap.Logger
}

func NewUpdateDeliveryCommandHandler(uowFactory SepulkaUoWFactory, logger *zap.Logger) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h UpdateDeliveryCommandHandler) Handle(ctx context.Context, command UpdateDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := policy.Authorize(command.Actor(), policy.UpdateDelivery); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SepulkaRepository()
	aggregate, err := repo.Get(ctx, command.Code())
	if err != nil {
		return err
	}

	before := aggregate.State()

	if patch := command.Responsible(); patch.IsPresent() {
		responsible, resolveErr := resolveResponsible(ctx, uow.UserRepository(), patch.Value())
		if resolveErr != nil {
			return resolveErr
		}
		if err = aggregate.AssignDeliveryResponsible(responsible); err != nil {
			return err
		}
		if err = repo.UpdateDeliveryResponsible(ctx, aggregate); err != nil {
			return err
		}
	}

	if patch := command.Method(); patch.IsPresent() {
		if err = aggregate.UpdateDeliveryMethod(patch.Value()); err != nil {
			return err
		}
		if err = repo.UpdateDeliveryMethod(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = persistTransition(ctx, uow, aggregate, before, h.logger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
