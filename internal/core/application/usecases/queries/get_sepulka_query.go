package queries

import (
	"errors"
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/guard"

	"github.com/aarondl/null/v8"
)

var ErrGetSepulkaQueryIsNotConstructed = errors.New(
	"GetSepulkaQuery must be created via NewGetSepulkaQuery constructor",
)

// GetSepulkaQuery loads one order with its stages. Deleted orders are
// returned with state Deleted.
type GetSepulkaQuery struct {
	actor policy.Actor
	code  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSepulkaQuery(actor policy.Actor, code kernel.UUID) (GetSepulkaQuery, error) {
	if err := code.Validate(); err != nil {
		return GetSepulkaQuery{}, err
	}
	return GetSepulkaQuery{actor: actor, code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSepulkaQuery) Validate() error {
	return q.guard.Validate(ErrGetSepulkaQueryIsNotConstructed)
}

func (q GetSepulkaQuery) Actor() policy.Actor {
	return q.actor
}

func (q GetSepulkaQuery) Code() kernel.UUID {
	return q.code
}

// SepulkaDetails is the detail read model of an order.
type SepulkaDetails struct {
	SepulkaListItem
	CreatorID kernel.UUID
	Process   ProcessDetails
	Delivery  DeliveryDetails
}

// ProcessDetails names the responsible Grymzik by username, if any.
type ProcessDetails struct {
	Responsible  null.String
	IsVaccinated bool
	IsProcessed  bool
	DateUpdated  time.Time
}

// DeliveryDetails names the responsible Fufelnitsa by username, if any.
type DeliveryDetails struct {
	Responsible null.String
	Method      null.String
	DateUpdated time.Time
}
