package commands

import (
	"context"

	"sepulka/internal/core/domain/policy"

	"go.uber.org/zap"
)

// DeleteSepulkaCommandHandler soft-deletes an order. Deleting an already
// deleted order succeeds without writing.
type DeleteSepulkaCommandHandler struct {
	uowFactory SepulkaUoWFactory
	logger     *zap.Logger
}

func NewDeleteSepulkaCommandHandler(uowFactory SepulkaUoWFactory, logger *zap.Logger) DeleteSepulkaCommandHandler {
	return DeleteSepulkaCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h DeleteSepulkaCommandHandler) Handle(ctx context.Context, command DeleteSepulkaCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := policy.Authorize(command.Actor(), policy.DestroySepulka); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.SepulkaRepository().Get(ctx, command.Code())
	if err != nil {
		return err
	}

	before := aggregate.State()
	aggregate.SoftDelete()

	if err = persistTransition(ctx, uow, aggregate, before, h.logger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
