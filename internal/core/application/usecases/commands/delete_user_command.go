package commands

import (
	"errors"
	"strings"

	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand removes the user named target.
type DeleteUserCommand struct {
	actor  policy.Actor
	target string

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(actor policy.Actor, target string) (DeleteUserCommand, error) {
	if strings.TrimSpace(target) == "" {
		return DeleteUserCommand{}, errs.NewValueIsRequiredError("username")
	}
	return DeleteUserCommand{actor: actor, target: target, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) Actor() policy.Actor {
	return c.actor
}

func (c DeleteUserCommand) Target() string {
	return c.target
}
