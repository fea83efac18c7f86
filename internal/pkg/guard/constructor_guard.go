// Package guard holds the constructor guard used by commands and queries to
// reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. The zero value
// is "not constructed", so a struct literal such as commands.CreateSepulkaCommand{}
// fails validation while the result of NewCreateSepulkaCommand passes.
//
// Example:
//
//	type ListFlowQuery struct {
//	    code  kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (q ListFlowQuery) Validate() error {
//	    return q.guard.Validate(ErrListFlowQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
