package queries

import (
	"errors"
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/guard"
)

var ErrListFlowQueryIsNotConstructed = errors.New(
	"ListFlowQuery must be created via NewListFlowQuery constructor",
)

// ListFlowQuery pages through the message history of an order, oldest
// first. The history of a deleted order stays readable.
type ListFlowQuery struct {
	actor policy.Actor
	code  kernel.UUID
	page  kernel.Page

	guard guard.ConstructorGuard
}

func NewListFlowQuery(actor policy.Actor, code kernel.UUID, page kernel.Page) (ListFlowQuery, error) {
	if err := errors.Join(code.Validate(), page.Validate()); err != nil {
		return ListFlowQuery{}, err
	}
	return ListFlowQuery{actor: actor, code: code, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListFlowQuery) Validate() error {
	return q.guard.Validate(ErrListFlowQueryIsNotConstructed)
}

func (q ListFlowQuery) Actor() policy.Actor {
	return q.actor
}

func (q ListFlowQuery) Code() kernel.UUID {
	return q.code
}

func (q ListFlowQuery) Page() kernel.Page {
	return q.page
}

// withPage returns a copy of q addressing another page.
func (q ListFlowQuery) withPage(page kernel.Page) ListFlowQuery {
	q.page = page
	return q
}

// FlowItem is one history message.
type FlowItem struct {
	ID          int64
	Message     string
	DateCreated time.Time
}
