package commands

import (
	"errors"
	"strings"

	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand is a public signup. An empty role means user.DefaultRole.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(policy.Anonymous(), "bob", "", "correct horse", "grymzik")
type RegisterUserCommand struct {
	actor    policy.Actor
	username string
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	actor policy.Actor,
	username, email, password, role string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		actor: actor,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Actor() policy.Actor {
	return c.actor
}

func (c RegisterUserCommand) Username() string {
	return c.username
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if err := checkPassword(password); err != nil {
		return err
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role string) error {
	if strings.TrimSpace(role) == "" {
		c.role = user.DefaultRole
		return nil
	}
	parsed, err := user.ParseRole(role)
	if err != nil {
		return err
	}
	c.role = parsed
	return nil
}
