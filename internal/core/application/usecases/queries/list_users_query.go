package queries

import (
	"errors"
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery pages through accounts ordered by username.
type ListUsersQuery struct {
	actor policy.Actor
	page  kernel.Page
	role  *user.Role

	guard guard.ConstructorGuard
}

func NewListUsersQuery(actor policy.Actor, page kernel.Page, role *user.Role) (ListUsersQuery, error) {
	if err := page.Validate(); err != nil {
		return ListUsersQuery{}, err
	}
	if role != nil {
		if err := role.Validate(); err != nil {
			return ListUsersQuery{}, err
		}
	}
	return ListUsersQuery{actor: actor, page: page, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Actor() policy.Actor {
	return q.actor
}

func (q ListUsersQuery) Page() kernel.Page {
	return q.page
}

// Role narrows the listing to one role, for example to pick a responsible.
func (q ListUsersQuery) Role() *user.Role {
	return q.role
}

// UserView is the public read model of an account. It never carries the
// password hash.
type UserView struct {
	ID         kernel.UUID
	Username   string
	Email      string
	Role       user.Role
	IsStaff    bool
	IsActive   bool
	DateJoined time.Time
}

// ViewOf projects a loaded user.
func ViewOf(u *user.User) UserView {
	return UserView{
		ID:         u.ID(),
		Username:   u.Username(),
		Email:      u.Email(),
		Role:       u.Role(),
		IsStaff:    u.IsStaff(),
		IsActive:   u.IsActive(),
		DateJoined: u.DateJoined(),
	}
}
