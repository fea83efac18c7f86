package sepulka

import (
	"time"

	"sepulka/internal/core/domain/model/kernel"
)

// Delivery is the delivery stage of a sepulka, one per order.
type Delivery struct {
	responsibleID *kernel.UUID
	method        *Method
	dateUpdated   time.Time
}

func newDelivery(now time.Time) *Delivery {
	return &Delivery{dateUpdated: now}
}

// RestoreDelivery rebuilds a persisted delivery record.
func RestoreDelivery(responsibleID *kernel.UUID, method *Method, dateUpdated time.Time) (*Delivery, error) {
	if responsibleID != nil {
		if err := responsibleID.Validate(); err != nil {
			return nil, err
		}
	}
	if method != nil {
		if err := method.Validate(); err != nil {
			return nil, err
		}
	}
	return &Delivery{
		responsibleID: responsibleID,
		method:        method,
		dateUpdated:   dateUpdated,
	}, nil
}

// Responsible returns the id of the assigned Fufelnitsa, or nil.
func (d *Delivery) Responsible() *kernel.UUID {
	return d.responsibleID
}

// Method returns the chosen delivery method, or nil.
func (d *Delivery) Method() *Method {
	return d.method
}

func (d *Delivery) DateUpdated() time.Time {
	return d.dateUpdated
}

func (d *Delivery) isReady() bool {
	return d.responsibleID != nil && d.method != nil
}
