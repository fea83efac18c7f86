package sepulka

import (
	"time"

	"sepulka/internal/core/domain/model/kernel"
)

// Process is the process stage of a sepulka. It exists exactly once per
// order and is only reachable through the Sepulka aggregate.
type Process struct {
	responsibleID *kernel.UUID
	isVaccinated  bool
	isProcessed   bool
	dateUpdated   time.Time
}

func newProcess(now time.Time) *Process {
	return &Process{dateUpdated: now}
}

// RestoreProcess rebuilds a persisted process record.
func RestoreProcess(responsibleID *kernel.UUID, isVaccinated, isProcessed bool, dateUpdated time.Time) (*Process, error) {
	if responsibleID != nil {
		if err := responsibleID.Validate(); err != nil {
			return nil, err
		}
	}
	return &Process{
		responsibleID: responsibleID,
		isVaccinated:  isVaccinated,
		isProcessed:   isProcessed,
		dateUpdated:   dateUpdated,
	}, nil
}

// Responsible returns the id of the assigned Grymzik, or nil.
func (p *Process) Responsible() *kernel.UUID {
	return p.responsibleID
}

func (p *Process) IsVaccinated() bool {
	return p.isVaccinated
}

func (p *Process) IsProcessed() bool {
	return p.isProcessed
}

func (p *Process) DateUpdated() time.Time {
	return p.dateUpdated
}
