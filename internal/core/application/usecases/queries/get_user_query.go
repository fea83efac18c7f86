package queries

import (
	"errors"
	"strings"

	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery loads one account by username. Any authenticated user may
// read their own account.
type GetUserQuery struct {
	actor    policy.Actor
	username string

	guard guard.ConstructorGuard
}

func NewGetUserQuery(actor policy.Actor, username string) (GetUserQuery, error) {
	if strings.TrimSpace(username) == "" {
		return GetUserQuery{}, errs.NewValueIsRequiredError("username")
	}
	return GetUserQuery{actor: actor, username: username, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) Actor() policy.Actor {
	return q.actor
}

func (q GetUserQuery) Username() string {
	return q.username
}
