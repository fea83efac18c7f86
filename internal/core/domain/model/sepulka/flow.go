package sepulka

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/pkg/errs"
)

const MaxFlowMessageLength = 256

var ErrFlowIsNotConstructed = errors.New("Flow must be created via NewFlow or RestoreFlow constructor")

// Flow is one append-only message in the history of a sepulka. A new Flow
// has no id; the persistence layer assigns a monotonically increasing one.
type Flow struct {
	id          int64
	sepulkaCode kernel.UUID
	message     string
	dateCreated time.Time

	isConstructed bool
}

// NewFlow creates an unsaved message for the order identified by code.
func NewFlow(code kernel.UUID, message string) (*Flow, error) {
	f := &Flow{
		dateCreated:   time.Now().UTC(),
		isConstructed: true,
	}
	if err := errors.Join(
		f.setSepulkaCode(code),
		f.setMessage(message),
	); err != nil {
		return nil, err
	}
	return f, nil
}

// NewTransitionFlow records a state change, e.g. "state changed from created to in_process".
func NewTransitionFlow(code kernel.UUID, from, to State) (*Flow, error) {
	return NewFlow(code, fmt.Sprintf("state changed from %s to %s", from, to))
}

// RestoreFlow rebuilds a persisted message.
func RestoreFlow(id int64, code kernel.UUID, message string, dateCreated time.Time) (*Flow, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("flow id", id, 1, "unbounded")
	}
	f := &Flow{
		id:            id,
		dateCreated:   dateCreated,
		isConstructed: true,
	}
	if err := errors.Join(
		f.setSepulkaCode(code),
		f.setMessage(message),
	); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Flow) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFlowIsNotConstructed
	}
	return nil
}

func (f *Flow) ID() int64 {
	return f.id
}

func (f *Flow) SepulkaCode() kernel.UUID {
	return f.sepulkaCode
}

func (f *Flow) Message() string {
	return f.message
}

func (f *Flow) DateCreated() time.Time {
	return f.dateCreated
}

func (f *Flow) setSepulkaCode(code kernel.UUID) error {
	if err := code.Validate(); err != nil {
		return err
	}
	f.sepulkaCode = code
	return nil
}

func (f *Flow) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	if n := utf8.RuneCountInString(message); n > MaxFlowMessageLength {
		return errs.NewValueIsOutOfRangeError("message length", n, 1, MaxFlowMessageLength)
	}
	f.message = message
	return nil
}
