package policy

import "sepulka/internal/core/domain/model/user"

// Actor is the caller identity produced by the identity provider for one
// request: an optional user plus the derived authenticated and staff flags.
// The zero value is the anonymous actor.
type Actor struct {
	user *user.User
}

// Anonymous returns an unauthenticated actor.
func Anonymous() Actor {
	return Actor{}
}

// AuthenticatedAs returns an actor for u. A nil or inactive user yields the
// anonymous actor.
func AuthenticatedAs(u *user.User) Actor {
	if u == nil || u.Validate() != nil || !u.IsActive() {
		return Actor{}
	}
	return Actor{user: u}
}

// User returns the authenticated user or nil.
func (a Actor) User() *user.User {
	return a.user
}

func (a Actor) IsAuthenticated() bool {
	return a.user != nil
}

func (a Actor) IsStaff() bool {
	return a.user != nil && a.user.IsStaff()
}

// Username returns the user's name or "anonymous".
func (a Actor) Username() string {
	if a.user == nil {
		return "anonymous"
	}
	return a.user.Username()
}
