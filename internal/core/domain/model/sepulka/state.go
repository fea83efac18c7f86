package sepulka

import (
	"fmt"
	"strings"

	"sepulka/internal/pkg/errs"
)

// State is the lifecycle state of a sepulka order.
//
// State transitions:
//
//	Created ──> InProcess ──> Processed ──> InDelivery ──> Completed
//	   │            │             │              │
//	   └────────────┴─────────────┴──────────────┴──────> Deleted
//
// Created through InDelivery are derived from the process and delivery
// sub-records and only ever move forward. Completed is reached by an
// explicit CompleteDelivery. Deleted is a logical delete reachable from any
// state. Deleted and Completed are terminal for the workflow.
//
// The integer values are persisted and must not be renumbered.
type State int

const (
	// Deleted marks a logically removed order. It is zero so that any
	// "state > 0" predicate excludes deleted rows.
	Deleted State = iota

	// Created is the initial state of a new order.
	Created

	// InProcess means a Grymzik has been assigned to the process stage.
	InProcess

	// Processed means the process stage reported is_processed.
	Processed

	// InDelivery means a processed order has a delivery responsible and method.
	InDelivery

	// Completed means the Fufelnitsa confirmed the delivery.
	Completed
)

func getStateStrings() map[State]string {
	return map[State]string{
		Deleted:    "deleted",
		Created:    "created",
		InProcess:  "in_process",
		Processed:  "processed",
		InDelivery: "in_delivery",
		Completed:  "completed",
	}
}

// Validate checks that s is one of the six known states.
func (s State) Validate() error {
	if _, ok := getStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the snake_case label, e.g. "in_delivery".
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseState converts a label such as "processed" into a State.
func ParseState(label string) (State, error) {
	needle := strings.ToLower(strings.TrimSpace(label))
	for state, str := range getStateStrings() {
		if str == needle {
			return state, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", label))
}

// IsTerminal reports whether no workflow transition may leave s.
func (s State) IsTerminal() bool {
	return s == Deleted || s == Completed
}

// Advance moves forward to target if target is a derived workflow state
// (Created..InDelivery) later than s. It never moves backwards and never
// leaves a terminal state.
//
// Example:
//
//	InProcess.Advance(Processed) // Processed
//	Processed.Advance(InProcess) // Processed
//	Completed.Advance(InDelivery) // Completed
func (s State) Advance(target State) State {
	if s.IsTerminal() || target <= s || target > InDelivery {
		return s
	}
	return target
}

// Complete returns Completed when s is InDelivery or already Completed.
// Any other state yields a ValueIsInvalidError.
func (s State) Complete() (State, error) {
	if s == InDelivery || s == Completed {
		return Completed, nil
	}
	return s, errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("%s is not a valid state to complete delivery", s),
	)
}
