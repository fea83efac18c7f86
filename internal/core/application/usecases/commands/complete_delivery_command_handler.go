package commands

import (
	"context"

	"sepulka/internal/core/domain/policy"

	"go.uber.org/zap"
)

type CompleteDeliveryCommandHandler struct {
	uowFactory SepulkaUoWFactory
	logger     *zap.Logger
}

func NewCompleteDeliveryCommandHandler(uowFactory SepulkaUoWFactory, logger *zap.Logger) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := policy.Authorize(command.Actor(), policy.CompleteDelivery); err != nil {
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
	if err = aggregate.CompleteDelivery(); err != nil {
		return err
	}

	if err = persistTransition(ctx, uow, aggregate, before, h.logger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
