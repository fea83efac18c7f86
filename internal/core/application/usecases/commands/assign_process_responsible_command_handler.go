package commands

import (
	"context"

	"sepulka/internal/core/domain/policy"

	"go.uber.org/zap"
)

type AssignProcessResponsibleCommandHandler struct {
	uowFactory SepulkaUoWFactory
	logger     *zap.Logger
}

func NewAssignProcessResponsibleCommandHandler(
	uowFactory SepulkaUoWFactory,
	logger *zap.Logger,
) AssignProcessResponsibleCommandHandler {
	return AssignProcessResponsibleCommandHandler{uowFactory: uowFactory, logger: logger}
}

func (h AssignProcessResponsibleCommandHandler) Handle(ctx context.Context, command AssignProcessResponsibleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := policy.Authorize(command.Actor(), policy.AssignProcessResponsible); err != nil {
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

	responsible, err := resolveResponsible(ctx, uow.UserRepository(), command.Responsible())
	if err != nil {
		return err
	}

	before := aggregate.State()
	if err = aggregate.AssignProcessResponsible(responsible); err != nil {
		return err
	}

	if err = repo.UpdateProcessResponsible(ctx, aggregate); err != nil {
		return err
	}

	if err = persistTransition(ctx, uow, aggregate, before, h.logger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
