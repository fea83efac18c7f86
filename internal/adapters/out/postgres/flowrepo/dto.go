// Package flowrepo persists the append-only message history of an order.
package flowrepo

import (
	"time"

	"sepulka/internal/adapters/out/postgres/sepulkarepo"
	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"

	"github.com/google/uuid"
)

// FlowDTO is the sepulka_flows row. The bigserial id gives a total order
// of messages even when date_created collides.
type FlowDTO struct {
	ID          int64                  `gorm:"primaryKey;autoIncrement"`
	SepulkaCode uuid.UUID              `gorm:"type:uuid;not null;index:idx_flow_sepulka_created,priority:1"`
	Sepulka     sepulkarepo.SepulkaDTO `gorm:"foreignKey:SepulkaCode;references:Code;constraint:OnDelete:CASCADE"`
	Message     string                 `gorm:"type:varchar(256);not null"`
	DateCreated time.Time              `gorm:"not null;index:idx_flow_sepulka_created,priority:2"`
}

func (FlowDTO) TableName() string {
	return "sepulka_flows"
}

func fromDomain(f *sepulka.Flow) FlowDTO {
	return FlowDTO{
		ID:          f.ID(),
		SepulkaCode: f.SepulkaCode().Bytes(),
		Message:     f.Message(),
		DateCreated: f.DateCreated(),
	}
}

func toDomain(dto FlowDTO) (*sepulka.Flow, error) {
	code, err := kernel.UUIDFromBytes(dto.SepulkaCode[:])
	if err != nil {
		return nil, err
	}
	return sepulka.RestoreFlow(dto.ID, code, dto.Message, dto.DateCreated)
}
