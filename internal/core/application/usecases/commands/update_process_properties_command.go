package commands

import (
	"errors"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/guard"
)

var ErrUpdateProcessPropertiesCommandIsNotConstructed = errors.New(
	"UpdateProcessPropertiesCommand must be created via NewUpdateProcessPropertiesCommand constructor",
)

// UpdateProcessPropertiesCommand is the Grymzik conveyor update. Nil flags
// keep their stored value.
type UpdateProcessPropertiesCommand struct {
	actor        policy.Actor
	code         kernel.UUID
	isVaccinated *bool
	isProcessed  *bool

	guard guard.ConstructorGuard
}

func NewUpdateProcessPropertiesCommand(
	actor policy.Actor,
	code kernel.UUID,
	isVaccinated, isProcessed *bool,
) (UpdateProcessPropertiesCommand, error) {
	if err := code.Validate(); err != nil {
		return UpdateProcessPropertiesCommand{}, err
	}
	return UpdateProcessPropertiesCommand{
		actor:        actor,
		code:         code,
		isVaccinated: isVaccinated,
		isProcessed:  isProcessed,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProcessPropertiesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProcessPropertiesCommandIsNotConstructed)
}

func (c UpdateProcessPropertiesCommand) Actor() policy.Actor {
	return c.actor
}

func (c UpdateProcessPropertiesCommand) Code() kernel.UUID {
	return c.code
}

func (c UpdateProcessPropertiesCommand) IsVaccinated() *bool {
	return c.isVaccinated
}

func (c UpdateProcessPropertiesCommand) IsProcessed() *bool {
	return c.isProcessed
}
