package commands

import (
	"errors"
	"strings"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand is the Fufelnitsa delivery update. Each field is a
// Patch: absent fields are kept, cleared fields are stored as null.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryCommand(actor, code, Set("carol"), Set("AIRB"))
type UpdateDeliveryCommand struct {
	actor       policy.Actor
	code        kernel.UUID
	responsible Patch[string]
	method      Patch[sepulka.Method]

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryCommand(
	actor policy.Actor,
	code kernel.UUID,
	responsible Patch[string],
	method Patch[string],
) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setResponsible(responsible),
		cmd.setMethod(method),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) Actor() policy.Actor {
	return c.actor
}

func (c UpdateDeliveryCommand) Code() kernel.UUID {
	return c.code
}

func (c UpdateDeliveryCommand) Responsible() Patch[string] {
	return c.responsible
}

func (c UpdateDeliveryCommand) Method() Patch[sepulka.Method] {
	return c.method
}

func (c *UpdateDeliveryCommand) setCode(code kernel.UUID) error {
	if err := code.Validate(); err != nil {
		return err
	}
	c.code = code
	return nil
}

func (c *UpdateDeliveryCommand) setResponsible(responsible Patch[string]) error {
	if v := responsible.Value(); v != nil && strings.TrimSpace(*v) == "" {
		return errs.NewValueIsRequiredError("responsible")
	}
	c.responsible = responsible
	return nil
}

func (c *UpdateDeliveryCommand) setMethod(method Patch[string]) error {
	switch {
	case !method.IsPresent():
		c.method = Keep[sepulka.Method]()
	case method.Value() == nil:
		c.method = Clear[sepulka.Method]()
	default:
		parsed, err := sepulka.ParseMethod(*method.Value())
		if err != nil {
			return err
		}
		c.method = Set(parsed)
	}
	return nil
}
