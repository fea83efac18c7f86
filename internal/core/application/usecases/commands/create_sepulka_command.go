package commands

import (
	"errors"
	"strings"

	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrCreateSepulkaCommandIsNotConstructed = errors.New(
	"CreateSepulkaCommand must be created via NewCreateSepulkaCommand constructor",
)

// CreateSepulkaCommand represents a request by a Shmurdik to open a new order.
// The creator is always the calling actor.
//
// Example:
//
//	cmd, err := NewCreateSepulkaCommand(actor, "s-1", true, false, false, "XL")
//	if err != nil {
//	    return err
//	}
//	code, err := handler.Handle(ctx, cmd)
type CreateSepulkaCommand struct { //nolint:recvcheck //using for validation
	actor policy.Actor
	attrs sepulka.Attributes

	guard guard.ConstructorGuard
}

// NewCreateSepulkaCommand checks the payload shape: a non-empty name and a
// known size (empty means the default size).
func NewCreateSepulkaCommand(
	actor policy.Actor,
	name string,
	isWarm, isSquare, isSoft bool,
	size string,
) (CreateSepulkaCommand, error) {
	cmd := CreateSepulkaCommand{
		actor: actor,
		attrs: sepulka.Attributes{IsWarm: isWarm, IsSquare: isSquare, IsSoft: isSoft},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setSize(size),
	); err != nil {
		return CreateSepulkaCommand{}, err
	}

	return cmd, nil
}

func (c CreateSepulkaCommand) Validate() error {
	return c.guard.Validate(ErrCreateSepulkaCommandIsNotConstructed)
}

func (c CreateSepulkaCommand) Actor() policy.Actor {
	return c.actor
}

func (c CreateSepulkaCommand) Attributes() sepulka.Attributes {
	return c.attrs
}

func (c *CreateSepulkaCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.attrs.Name = name
	return nil
}

func (c *CreateSepulkaCommand) setSize(size string) error {
	parsed, err := sepulka.ParseSize(size)
	if err != nil {
		return err
	}
	c.attrs.Size = parsed
	return nil
}
