package commands

import (
	"errors"
	"strings"

	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand exchanges a username and password for a bearer token.
type LoginCommand struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(username, password string) (LoginCommand, error) {
	var errList []error
	if strings.TrimSpace(username) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return LoginCommand{}, err
	}
	return LoginCommand{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Username() string {
	return c.username
}

func (c LoginCommand) Password() string {
	return c.password
}
