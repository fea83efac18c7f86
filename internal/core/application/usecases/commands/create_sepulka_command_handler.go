package commands

import (
	"context"
	"fmt"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/policy"

	"go.uber.org/zap"
)

// CreateSepulkaCommandHandler creates the order, its process and delivery
// rows and the first flow entry in one transaction.
type CreateSepulkaCommandHandler struct {
	uowFactory SepulkaUoWFactory
	logger     *zap.Logger
}

func NewCreateSepulkaCommandHandler(uowFactory SepulkaUoWFactory, logger *zap.Logger) CreateSepulkaCommandHandler {
	return CreateSepulkaCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (h CreateSepulkaCommandHandler) Handle(ctx context.Context, command CreateSepulkaCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	actor := command.Actor()
	if err := policy.Authorize(actor, policy.CreateSepulka); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := sepulka.NewSepulka(actor.User(), command.Attributes())
	if err != nil {
		return kernel.UUID{}, err
	}

	flow, err := sepulka.NewFlow(aggregate.Code(), fmt.Sprintf("created by %s", actor.Username()))
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SepulkaRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if _, err = uow.FlowRepository().Add(ctx, flow); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.logger.Info("sepulka created",
		zap.String("code", aggregate.Code().String()),
		zap.String("creator", actor.Username()),
	)
	return aggregate.Code(), nil
}
