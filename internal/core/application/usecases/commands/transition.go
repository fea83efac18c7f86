package commands

import (
	"context"

	"sepulka/internal/core/domain/model/sepulka"

	"go.uber.org/zap"
)

// persistTransition writes the aggregate state and a flow entry when an
// operation moved the order from before to a new state. No entry is
// written when a concurrent writer already stored a later state.
func persistTransition(
	ctx context.Context,
	uow SepulkaUoW,
	aggregate *sepulka.Sepulka,
	before sepulka.State,
	logger *zap.Logger,
) error {
	after := aggregate.State()
	if after == before {
		return nil
	}

	applied, err := uow.SepulkaRepository().UpdateState(ctx, aggregate)
	if err != nil {
		return err
	}
	if !applied {
		logger.Debug("sepulka state already advanced",
			zap.String("code", aggregate.Code().String()),
			zap.Stringer("to", after),
		)
		return nil
	}

	flow, err := sepulka.NewTransitionFlow(aggregate.Code(), before, after)
	if err != nil {
		return err
	}
	if _, err = uow.FlowRepository().Add(ctx, flow); err != nil {
		return err
	}

	logger.Info("sepulka state changed",
		zap.String("code", aggregate.Code().String()),
		zap.Stringer("from", before),
		zap.Stringer("to", after),
	)
	return nil
}
