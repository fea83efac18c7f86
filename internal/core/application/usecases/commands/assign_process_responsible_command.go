package commands

import (
	"errors"
	"strings"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrAssignProcessResponsibleCommandIsNotConstructed = errors.New(
	"AssignProcessResponsibleCommand must be created via NewAssignProcessResponsibleCommand constructor",
)

// AssignProcessResponsibleCommand hands the process stage of an order to a
// Grymzik, identified by username. A nil username clears the assignment.
type AssignProcessResponsibleCommand struct {
	actor       policy.Actor
	code        kernel.UUID
	responsible *string

	guard guard.ConstructorGuard
}

func NewAssignProcessResponsibleCommand(
	actor policy.Actor,
	code kernel.UUID,
	responsible *string,
) (AssignProcessResponsibleCommand, error) {
	if err := code.Validate(); err != nil {
		return AssignProcessResponsibleCommand{}, err
	}
	if responsible != nil && strings.TrimSpace(*responsible) == "" {
		return AssignProcessResponsibleCommand{}, errs.NewValueIsRequiredError("responsible")
	}
	return AssignProcessResponsibleCommand{
		actor:       actor,
		code:        code,
		responsible: responsible,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AssignProcessResponsibleCommand) Validate() error {
	return c.guard.Validate(ErrAssignProcessResponsibleCommandIsNotConstructed)
}

func (c AssignProcessResponsibleCommand) Actor() policy.Actor {
	return c.actor
}

func (c AssignProcessResponsibleCommand) Code() kernel.UUID {
	return c.code
}

// Responsible returns the username to assign, or nil to clear.
func (c AssignProcessResponsibleCommand) Responsible() *string {
	return c.responsible
}
