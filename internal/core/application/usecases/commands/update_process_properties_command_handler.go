package commands

import (
	"context"

	"sepulka/internal/core/domain/policy"

	"go.uber.org/zap"
)

type UpdateProcessPropertiesCommandHandler struct {
	uowFactory SepulkaUoWFactory
	logger     *zap.Logger
}

func NewUpdateProcessPropertiesCommandHandler(
	uowFactory SepulkaUoWFactory,
	logger *zap.Logger,
) UpdateProcessPropertiesCommandHandler {
	return UpdateProcessPropertiesCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h UpdateProcessPropertiesCommandHandler) Handle(ctx context.Context, command UpdateProcessPropertiesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := policy.Authorize(command.Actor(), policy.UpdateProcessProperties); err != nil {
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

	isVaccinated := aggregate.Process().IsVaccinated()
	if v := command.IsVaccinated(); v != nil {
		isVaccinated = *v
	}
	isProcessed := aggregate.Process().IsProcessed()
	if v := command.IsProcessed(); v != nil {
		isProcessed = *v
	}

	before := aggregate.State()
	if err = aggregate.UpdateProcessProperties(isVaccinated, isProcessed); err != nil {
		return err
	}

	if err = repo.UpdateProcessProperties(ctx, aggregate); err != nil {
		return err
	}

	if err = persistTransition(ctx, uow, aggregate, before, h.logger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
