// Package policy is the permission evaluator of the sepulka service.
//
// It turns the (user, is_authenticated, is_staff) tuple of a request, the
// Actor, into an allow or deny decision for a named Action. Decisions are
// pure functions of the Actor; no request or storage state is consulted.
//
// Predicates compose: StaffOr checks the staff flag first and only then its
// inner predicate, All requires every predicate. The policy table in
// rules.go is the single source of truth for who may call what.
package policy
