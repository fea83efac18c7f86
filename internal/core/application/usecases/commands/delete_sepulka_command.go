package commands

import (
	"errors"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/guard"
)

var ErrDeleteSepulkaCommandIsNotConstructed = errors.New(
	"DeleteSepulkaCommand must be created via NewDeleteSepulkaCommand constructor",
)

// DeleteSepulkaCommand represents a logical delete of an order.
type DeleteSepulkaCommand struct {
	actor policy.Actor
	code  kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteSepulkaCommand(actor policy.Actor, code kernel.UUID) (DeleteSepulkaCommand, error) {
	if err := code.Validate(); err != nil {
		return DeleteSepulkaCommand{}, err
	}
	return DeleteSepulkaCommand{actor: actor, code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteSepulkaCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSepulkaCommandIsNotConstructed)
}

func (c DeleteSepulkaCommand) Actor() policy.Actor {
	return c.actor
}

func (c DeleteSepulkaCommand) Code() kernel.UUID {
	return c.code
}
