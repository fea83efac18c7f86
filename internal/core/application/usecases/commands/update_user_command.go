package commands

import (
	"errors"
	"strings"

	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand changes the profile of the user named target. Nil fields
// keep their stored value. The staff flag is not writable.
type UpdateUserCommand struct {
	actor    policy.Actor
	target   string
	username *string
	email    *string
	password *string
	role     *user.Role

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(
	actor policy.Actor,
	target string,
	username, email, password, role *string,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		actor:    actor,
		username: username,
		email:    email,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTarget(target),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) Actor() policy.Actor {
	return c.actor
}

func (c UpdateUserCommand) Target() string {
	return c.target
}

func (c UpdateUserCommand) Username() *string {
	return c.username
}

func (c UpdateUserCommand) Email() *string {
	return c.email
}

func (c UpdateUserCommand) Password() *string {
	return c.password
}

func (c UpdateUserCommand) Role() *user.Role {
	return c.role
}

func (c *UpdateUserCommand) setTarget(target string) error {
	if strings.TrimSpace(target) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.target = target
	return nil
}

func (c *UpdateUserCommand) setPassword(password *string) error {
	if password == nil {
		return nil
	}
	if err := checkPassword(*password); err != nil {
		return err
	}
	c.password = password
	return nil
}

func (c *UpdateUserCommand) setRole(role *string) error {
	if role == nil {
		return nil
	}
	parsed, err := user.ParseRole(*role)
	if err != nil {
		return err
	}
	c.role = &parsed
	return nil
}
