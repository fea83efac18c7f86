package commands

import (
	"errors"
	"strings"

	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrCreateStaffUserCommandIsNotConstructed = errors.New(
	"CreateStaffUserCommand must be created via NewCreateStaffUserCommand constructor",
)

// CreateStaffUserCommand seeds an administrator at startup. It bypasses the
// policy table and is never reachable over HTTP.
type CreateStaffUserCommand struct {
	username string
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewCreateStaffUserCommand(username, email, password, role string) (CreateStaffUserCommand, error) {
	cmd := CreateStaffUserCommand{email: email, role: user.DefaultRole, guard: guard.NewConstructorGuard()}

	var errList []error
	if strings.TrimSpace(username) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	errList = append(errList, checkPassword(password))
	if strings.TrimSpace(role) != "" {
		parsed, err := user.ParseRole(role)
		errList = append(errList, err)
		cmd.role = parsed
	}
	if err := errors.Join(errList...); err != nil {
		return CreateStaffUserCommand{}, err
	}

	cmd.username = username
	cmd.password = password
	return cmd, nil
}

func (c CreateStaffUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffUserCommandIsNotConstructed)
}

func (c CreateStaffUserCommand) Username() string {
	return c.username
}

func (c CreateStaffUserCommand) Email() string {
	return c.email
}

func (c CreateStaffUserCommand) Password() string {
	return c.password
}

func (c CreateStaffUserCommand) Role() user.Role {
	return c.role
}
