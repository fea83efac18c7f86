package policy

import (
	"fmt"

	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/pkg/errs"
)

// Action names an externally visible operation.
type Action string

const (
	ListSepulkas             Action = "list_sepulkas"
	CreateSepulka            Action = "create_sepulka"
	RetrieveSepulka          Action = "retrieve_sepulka"
	DestroySepulka           Action = "destroy_sepulka"
	AssignProcessResponsible Action = "assign_process_responsible"
	UpdateProcessProperties  Action = "update_process_properties"
	UpdateDelivery           Action = "update_delivery"
	CompleteDelivery         Action = "complete_delivery"
	AppendFlow               Action = "append_flow"
	ListFlow                 Action = "list_flow"

	RegisterUser Action = "register_user"
	Login        Action = "login"
	Logout       Action = "logout"
	ListUsers    Action = "list_users"
	RetrieveUser Action = "retrieve_user"
	UpdateUser   Action = "update_user"
	DestroyUser  Action = "destroy_user"
)

// rules is the policy table. Actions missing from it are denied.
var rules = map[Action]Predicate{
	ListSepulkas:             StaffOr(AllowedRole(user.Shmurdik)),
	CreateSepulka:            AllowedRole(user.Shmurdik),
	RetrieveSepulka:          Authenticated(),
	DestroySepulka:           StaffOr(AllowedRole(user.Shmurdik)),
	AssignProcessResponsible: All(Authenticated(), AllowedRole(user.Shmurdik)),
	UpdateProcessProperties:  All(Authenticated(), AllowedRole(user.Grymzik)),
	UpdateDelivery:           All(Authenticated(), AllowedRole(user.Fufelnitsa)),
	CompleteDelivery:         All(Authenticated(), AllowedRole(user.Fufelnitsa)),
	AppendFlow:               Authenticated(),
	ListFlow:                 Authenticated(),

	RegisterUser: AllowAny(),
	Login:        AllowAny(),
	Logout:       Authenticated(),
	ListUsers:    StaffOr(AllowedRole(user.Shmurdik)),
	RetrieveUser: StaffOr(AllowedRole(user.Shmurdik)),
	UpdateUser:   StaffOnly(),
	DestroyUser:  StaffOnly(),
}

// Rule returns the predicate bound to action.
func Rule(action Action) (Predicate, bool) {
	p, ok := rules[action]
	return p, ok
}

// Authorize evaluates the policy table for action.
//
// A refused anonymous actor gets an AuthenticationError (401); a refused
// authenticated actor gets a PermissionDeniedError (403).
//
// Example:
//
//	if err := policy.Authorize(actor, policy.CreateSepulka); err != nil {
//	    return err
//	}
func Authorize(actor Actor, action Action) error {
	p, ok := rules[action]
	if !ok {
		return fmt.Errorf("no policy rule for action %q", action)
	}
	return check(actor, action, p)
}

// AuthorizeSelf is Authorize for user-scoped actions: it additionally
// admits the actor when target is the actor itself.
func AuthorizeSelf(actor Actor, action Action, target *user.User) error {
	p, ok := rules[action]
	if !ok {
		return fmt.Errorf("no policy rule for action %q", action)
	}
	return check(actor, action, Any(p, Self(target)))
}

// RequireAuthenticated refuses anonymous actors only. Handlers use it ahead
// of AuthorizeSelf so that anonymous callers get 401 before any lookup.
func RequireAuthenticated(actor Actor) error {
	if !actor.IsAuthenticated() {
		return errs.NewAuthenticationError("authentication credentials were not provided")
	}
	return nil
}

func check(actor Actor, action Action, p Predicate) error {
	if p(actor) {
		return nil
	}
	if !actor.IsAuthenticated() {
		return errs.NewAuthenticationError("authentication credentials were not provided")
	}
	return errs.NewPermissionDeniedError(string(action))
}
