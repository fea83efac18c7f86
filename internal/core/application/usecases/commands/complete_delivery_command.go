package commands

import (
	"errors"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand confirms that an order in delivery has arrived.
type CompleteDeliveryCommand struct {
	actor policy.Actor
	code  kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(actor policy.Actor, code kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := code.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	return CompleteDeliveryCommand{actor: actor, code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) Actor() policy.Actor {
	return c.actor
}

func (c CompleteDeliveryCommand) Code() kernel.UUID {
	return c.code
}
