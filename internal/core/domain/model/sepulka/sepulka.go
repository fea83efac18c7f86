package sepulka

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/pkg/errs"
)

const MaxNameLength = 128

var ErrSepulkaIsNotConstructed = errors.New("Sepulka must be created via NewSepulka or RestoreSepulka constructor")

// Attributes are the creator-supplied properties of an order.
type Attributes struct {
	Name     string
	IsWarm   bool
	IsSquare bool
	IsSoft   bool
	Size     Size
}

// Sepulka is the order aggregate root. It owns exactly one Process and one
// Delivery for its whole life and keeps State consistent with them.
//
// Every mutation follows the same pattern:
//  1. a deleted order rejects the mutation with ObjectNotFoundError
//  2. role checks on assigned users fail with ValueIsInvalidError
//  3. only the fields owned by the operation are changed
//  4. the workflow state is re-derived and may only move forward
//
// Example:
//
//	order, err := sepulka.NewSepulka(alice, sepulka.Attributes{Name: "s-1", IsWarm: true})
//	if err != nil {
//	    return err
//	}
//	if err := order.AssignProcessResponsible(bob); err != nil {
//	    return err // value is invalid: responsible (cause: bob is not a grymzik)
//	}
//	order.State() // InProcess
type Sepulka struct {
	code        kernel.UUID
	name        string
	isWarm      bool
	isSquare    bool
	isSoft      bool
	size        Size
	state       State
	creatorID   kernel.UUID
	process     *Process
	delivery    *Delivery
	dateCreated time.Time
	dateUpdated time.Time

	isConstructed bool
}

// NewSepulka creates an order in state Created together with an empty
// Process and Delivery. The creator must be a Shmurdik.
func NewSepulka(creator *user.User, attrs Attributes) (*Sepulka, error) {
	if err := creator.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("creator", err)
	}
	if err := user.RequireRole("creator", creator, user.Shmurdik); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s := &Sepulka{
		code:          kernel.NewUUID(),
		state:         Created,
		creatorID:     creator.ID(),
		process:       newProcess(now),
		delivery:      newDelivery(now),
		dateCreated:   now,
		dateUpdated:   now,
		isConstructed: true,
	}

	if err := s.setAttributes(attrs); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSepulka rebuilds a persisted order. The creator role is not
// re-checked because it was enforced at creation.
func RestoreSepulka(
	code kernel.UUID,
	attrs Attributes,
	state State,
	creatorID kernel.UUID,
	process *Process,
	delivery *Delivery,
	dateCreated, dateUpdated time.Time,
) (*Sepulka, error) {
	s := &Sepulka{
		dateCreated:   dateCreated,
		dateUpdated:   dateUpdated,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setCode(code),
		s.setAttributes(attrs),
		s.setState(state),
		s.setCreatorID(creatorID),
		s.setProcess(process),
		s.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Sepulka) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSepulkaIsNotConstructed
	}
	return nil
}

func (s *Sepulka) IsEqual(other *Sepulka) bool {
	return s != nil && other != nil && s.code.IsEqual(other.code)
}

func (s *Sepulka) Code() kernel.UUID {
	return s.code
}

func (s *Sepulka) Name() string {
	return s.name
}

func (s *Sepulka) IsWarm() bool {
	return s.isWarm
}

func (s *Sepulka) IsSquare() bool {
	return s.isSquare
}

func (s *Sepulka) IsSoft() bool {
	return s.isSoft
}

func (s *Sepulka) Size() Size {
	return s.size
}

func (s *Sepulka) State() State {
	return s.state
}

func (s *Sepulka) IsDeleted() bool {
	return s.state == Deleted
}

func (s *Sepulka) CreatorID() kernel.UUID {
	return s.creatorID
}

func (s *Sepulka) Process() *Process {
	return s.process
}

func (s *Sepulka) Delivery() *Delivery {
	return s.delivery
}

func (s *Sepulka) DateCreated() time.Time {
	return s.dateCreated
}

func (s *Sepulka) DateUpdated() time.Time {
	return s.dateUpdated
}

// AssignProcessResponsible sets (or clears, when responsible is nil) the
// Grymzik of the process stage. Vaccination and processing flags are kept.
func (s *Sepulka) AssignProcessResponsible(responsible *user.User) error {
	if err := s.ensureNotDeleted(); err != nil {
		return err
	}

	var id *kernel.UUID
	if responsible != nil {
		if err := user.RequireRole("responsible", responsible, user.Grymzik); err != nil {
			return err
		}
		rid := responsible.ID()
		id = &rid
	}

	now := time.Now().UTC()
	s.process.responsibleID = id
	s.process.dateUpdated = now
	s.touch(now)
	return nil
}

// UpdateProcessProperties sets the vaccination and processing flags. The
// process responsible is never touched.
func (s *Sepulka) UpdateProcessProperties(isVaccinated, isProcessed bool) error {
	if err := s.ensureNotDeleted(); err != nil {
		return err
	}

	now := time.Now().UTC()
	s.process.isVaccinated = isVaccinated
	s.process.isProcessed = isProcessed
	s.process.dateUpdated = now
	s.touch(now)
	return nil
}

// AssignDeliveryResponsible sets (or clears) the Fufelnitsa of the delivery stage.
func (s *Sepulka) AssignDeliveryResponsible(responsible *user.User) error {
	if err := s.ensureNotDeleted(); err != nil {
		return err
	}

	var id *kernel.UUID
	if responsible != nil {
		if err := user.RequireRole("responsible", responsible, user.Fufelnitsa); err != nil {
			return err
		}
		rid := responsible.ID()
		id = &rid
	}

	now := time.Now().UTC()
	s.delivery.responsibleID = id
	s.delivery.dateUpdated = now
	s.touch(now)
	return nil
}

// UpdateDeliveryMethod sets (or clears) the delivery method.
func (s *Sepulka) UpdateDeliveryMethod(method *Method) error {
	if err := s.ensureNotDeleted(); err != nil {
		return err
	}
	if method != nil {
		if err := method.Validate(); err != nil {
			return err
		}
		m := *method
		method = &m
	}

	now := time.Now().UTC()
	s.delivery.method = method
	s.delivery.dateUpdated = now
	s.touch(now)
	return nil
}

// CompleteDelivery moves an InDelivery order to Completed. Completing an
// already completed order is a no-op.
func (s *Sepulka) CompleteDelivery() error {
	if err := s.ensureNotDeleted(); err != nil {
		return err
	}

	next, err := s.state.Complete()
	if err != nil {
		return err
	}
	if next != s.state {
		s.state = next
		s.dateUpdated = time.Now().UTC()
	}
	return nil
}

// SoftDelete marks the order Deleted. Process, Delivery and Flow are kept.
// Deleting a deleted order is a no-op.
func (s *Sepulka) SoftDelete() {
	if s.state == Deleted {
		return
	}
	s.state = Deleted
	s.dateUpdated = time.Now().UTC()
}

// AppendFlow creates a new unsaved Flow message for this order.
func (s *Sepulka) AppendFlow(message string) (*Flow, error) {
	if err := s.ensureNotDeleted(); err != nil {
		return nil, err
	}
	return NewFlow(s.code, message)
}

// derivedState computes the workflow state implied by the sub-records.
func (s *Sepulka) derivedState() State {
	target := Created
	if s.process.responsibleID != nil {
		target = InProcess
	}
	if s.process.isProcessed {
		target = Processed
		if s.delivery.isReady() {
			target = InDelivery
		}
	}
	return target
}

func (s *Sepulka) touch(now time.Time) {
	s.state = s.state.Advance(s.derivedState())
	s.dateUpdated = now
}

func (s *Sepulka) ensureNotDeleted() error {
	if s.state == Deleted {
		return errs.NewObjectNotFoundError("sepulka", s.code.String())
	}
	return nil
}

func (s *Sepulka) setCode(code kernel.UUID) error {
	if err := code.Validate(); err != nil {
		return err
	}
	s.code = code
	return nil
}

func (s *Sepulka) setAttributes(attrs Attributes) error {
	name := strings.TrimSpace(attrs.Name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}

	size := attrs.Size
	if size == "" {
		size = DefaultSize
	}
	if err := size.Validate(); err != nil {
		return err
	}

	s.name = name
	s.isWarm = attrs.IsWarm
	s.isSquare = attrs.IsSquare
	s.isSoft = attrs.IsSoft
	s.size = size
	return nil
}

func (s *Sepulka) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	s.state = state
	return nil
}

func (s *Sepulka) setCreatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("creator", err)
	}
	s.creatorID = id
	return nil
}

func (s *Sepulka) setProcess(p *Process) error {
	if p == nil {
		return errs.NewValueIsRequiredError("process")
	}
	s.process = p
	return nil
}

func (s *Sepulka) setDelivery(d *Delivery) error {
	if d == nil {
		return errs.NewValueIsRequiredError("delivery")
	}
	s.delivery = d
	return nil
}
