package queries

import (
	"errors"
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrListSepulkasQueryIsNotConstructed = errors.New(
	"ListSepulkasQuery must be created via NewListSepulkasQuery constructor",
)

// ListSepulkasQuery lists live orders, newest first. Deleted orders never
// appear, and filtering by the deleted state is rejected.
//
// Example:
//
//	query, err := NewListSepulkasQuery(actor, kernel.FirstPage(), nil)
//	page, err := handler.Handle(ctx, query)
//	for _, item := range page.Items {
//	    fmt.Println(item.Code, item.State)
//	}
type ListSepulkasQuery struct {
	actor policy.Actor
	page  kernel.Page
	state *sepulka.State

	guard guard.ConstructorGuard
}

func NewListSepulkasQuery(actor policy.Actor, page kernel.Page, state *sepulka.State) (ListSepulkasQuery, error) {
	if err := page.Validate(); err != nil {
		return ListSepulkasQuery{}, err
	}
	if state != nil {
		if err := state.Validate(); err != nil {
			return ListSepulkasQuery{}, err
		}
		if *state == sepulka.Deleted {
			return ListSepulkasQuery{}, errs.NewValueIsInvalidErrorWithCause(
				"state", errors.New("deleted orders are not listed"),
			)
		}
	}
	return ListSepulkasQuery{actor: actor, page: page, state: state, guard: guard.NewConstructorGuard()}, nil
}

func (q ListSepulkasQuery) Validate() error {
	return q.guard.Validate(ErrListSepulkasQueryIsNotConstructed)
}

func (q ListSepulkasQuery) Actor() policy.Actor {
	return q.actor
}

func (q ListSepulkasQuery) Page() kernel.Page {
	return q.page
}

func (q ListSepulkasQuery) State() *sepulka.State {
	return q.state
}

// SepulkaListItem is the list read model of an order.
type SepulkaListItem struct {
	Code            kernel.UUID
	Name            string
	IsWarm          bool
	IsSquare        bool
	IsSoft          bool
	Size            sepulka.Size
	State           sepulka.State
	CreatorUsername string
	DateCreated     time.Time
	DateUpdated     time.Time
}
