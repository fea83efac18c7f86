package commands

import (
	"context"

	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/policy"

	"go.uber.org/zap"
)

// AppendFlowCommandHandler stores a message for an existing, not deleted
// order and returns it with its assigned id.
type AppendFlowCommandHandler struct {
	uowFactory SepulkaUoWFactory
	logger     *zap.Logger
}

func NewAppendFlowCommandHandler(uowFactory SepulkaUoWFactory, logger *zap.Logger) AppendFlowCommandHandler {
	return AppendFlowCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h AppendFlowCommandHandler) Handle(ctx context.Context, command AppendFlowCommand) (*sepulka.Flow, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if err := policy.Authorize(command.Actor(), policy.AppendFlow); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.SepulkaRepository().Get(ctx, command.Code())
	if err != nil {
		return nil, err
	}

	flow, err := aggregate.AppendFlow(command.Message())
	if err != nil {
		return nil, err
	}

	saved, err := uow.FlowRepository().Add(ctx, flow)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Debug("flow appended",
		zap.String("code", aggregate.Code().String()),
		zap.Int64("flow_id", saved.ID()),
		zap.String("author", command.Actor().Username()),
	)
	return saved, nil
}
