package policy

import "sepulka/internal/core/domain/model/user"

// Predicate decides whether an actor may proceed. Predicates are pure and
// composable; the table in rules.go maps every action to one of them.
type Predicate func(Actor) bool

// AllowAny admits every caller, including anonymous ones.
func AllowAny() Predicate {
	return func(Actor) bool { return true }
}

// Authenticated admits any identified caller.
func Authenticated() Predicate {
	return func(a Actor) bool { return a.IsAuthenticated() }
}

// AllowedRole admits an authenticated caller that holds exactly role r.
func AllowedRole(r user.Role) Predicate {
	return func(a Actor) bool {
		return a.IsAuthenticated() && user.HasRole(a.User(), r)
	}
}

// StaffOnly admits authenticated staff users.
func StaffOnly() Predicate {
	return func(a Actor) bool { return a.IsStaff() }
}

// StaffOr admits staff without evaluating p, and otherwise defers to p.
// Authentication is still required.
func StaffOr(p Predicate) Predicate {
	return func(a Actor) bool {
		if !a.IsAuthenticated() {
			return false
		}
		if a.IsStaff() {
			return true
		}
		return p(a)
	}
}

// All admits the caller only if every predicate does. Evaluation stops at
// the first refusal.
func All(ps ...Predicate) Predicate {
	return func(a Actor) bool {
		for _, p := range ps {
			if !p(a) {
				return false
			}
		}
		return true
	}
}

// Any admits the caller if at least one predicate does.
func Any(ps ...Predicate) Predicate {
	return func(a Actor) bool {
		for _, p := range ps {
			if p(a) {
				return true
			}
		}
		return false
	}
}

// Self admits the authenticated caller whose identity equals target.
func Self(target *user.User) Predicate {
	return func(a Actor) bool {
		return a.IsAuthenticated() && a.User().IsEqual(target)
	}
}
