package commands

import (
	"errors"
	"strings"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrAppendFlowCommandIsNotConstructed = errors.New(
	"AppendFlowCommand must be created via NewAppendFlowCommand constructor",
)

// AppendFlowCommand adds a free text message to the history of an order.
type AppendFlowCommand struct {
	actor   policy.Actor
	code    kernel.UUID
	message string

	guard guard.ConstructorGuard
}

func NewAppendFlowCommand(actor policy.Actor, code kernel.UUID, message string) (AppendFlowCommand, error) {
	cmd := AppendFlowCommand{actor: actor, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setMessage(message),
	); err != nil {
		return AppendFlowCommand{}, err
	}

	return cmd, nil
}

func (c AppendFlowCommand) Validate() error {
	return c.guard.Validate(ErrAppendFlowCommandIsNotConstructed)
}

func (c AppendFlowCommand) Actor() policy.Actor {
	return c.actor
}

func (c AppendFlowCommand) Code() kernel.UUID {
	return c.code
}

func (c AppendFlowCommand) Message() string {
	return c.message
}

func (c *AppendFlowCommand) setCode(code kernel.UUID) error {
	if err := code.Validate(); err != nil {
		return err
	}
	c.code = code
	return nil
}

func (c *AppendFlowCommand) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	c.message = message
	return nil
}
