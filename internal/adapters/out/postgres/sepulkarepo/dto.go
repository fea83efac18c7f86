// Package sepulkarepo persists the order aggregate across the sepulkas,
// sepulka_processes and sepulka_deliveries tables.
package sepulkarepo

import (
	"time"

	"sepulka/internal/adapters/out/postgres/userrepo"
	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"

	"github.com/google/uuid"
)

// SepulkaDTO is the sepulkas row. Process and Delivery are one-to-one
// children keyed by the order code.
type SepulkaDTO struct {
	Code        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name        string           `gorm:"type:varchar(128);not null"`
	IsWarm      bool             `gorm:"not null;default:false"`
	IsSquare    bool             `gorm:"not null;default:false"`
	IsSoft      bool             `gorm:"not null;default:false"`
	Size        string           `gorm:"type:varchar(3);not null;default:M"`
	State       int              `gorm:"type:smallint;not null;index"`
	CreatorID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Creator     userrepo.UserDTO `gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT"`
	Process     ProcessDTO       `gorm:"foreignKey:SepulkaCode;references:Code;constraint:OnDelete:CASCADE"`
	Delivery    DeliveryDTO      `gorm:"foreignKey:SepulkaCode;references:Code;constraint:OnDelete:CASCADE"`
	DateCreated time.Time        `gorm:"not null;index"`
	DateUpdated time.Time        `gorm:"not null"`
}

func (SepulkaDTO) TableName() string {
	return "sepulkas"
}

type ProcessDTO struct {
	SepulkaCode   uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ResponsibleID *uuid.UUID        `gorm:"type:uuid;index"`
	Responsible   *userrepo.UserDTO `gorm:"foreignKey:ResponsibleID;constraint:OnDelete:RESTRICT"`
	IsVaccinated  bool              `gorm:"not null;default:false"`
	IsProcessed   bool              `gorm:"not null;default:false"`
	DateUpdated   time.Time         `gorm:"not null"`
}

func (ProcessDTO) TableName() string {
	return "sepulka_processes"
}

type DeliveryDTO struct {
	SepulkaCode   uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ResponsibleID *uuid.UUID        `gorm:"type:uuid;index"`
	Responsible   *userrepo.UserDTO `gorm:"foreignKey:ResponsibleID;constraint:OnDelete:RESTRICT"`
	Method        *string           `gorm:"type:varchar(4)"`
	DateUpdated   time.Time         `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "sepulka_deliveries"
}

func fromDomain(s *sepulka.Sepulka) SepulkaDTO {
	code := s.Code().Bytes()

	var method *string
	if m := s.Delivery().Method(); m != nil {
		raw := m.String()
		method = &raw
	}

	return SepulkaDTO{
		Code:      code,
		Name:      s.Name(),
		IsWarm:    s.IsWarm(),
		IsSquare:  s.IsSquare(),
		IsSoft:    s.IsSoft(),
		Size:      string(s.Size()),
		State:     int(s.State()),
		CreatorID: s.CreatorID().Bytes(),
		Process: ProcessDTO{
			SepulkaCode:   code,
			ResponsibleID: uuidPtr(s.Process().Responsible()),
			IsVaccinated:  s.Process().IsVaccinated(),
			IsProcessed:   s.Process().IsProcessed(),
			DateUpdated:   s.Process().DateUpdated(),
		},
		Delivery: DeliveryDTO{
			SepulkaCode:   code,
			ResponsibleID: uuidPtr(s.Delivery().Responsible()),
			Method:        method,
			DateUpdated:   s.Delivery().DateUpdated(),
		},
		DateCreated: s.DateCreated(),
		DateUpdated: s.DateUpdated(),
	}
}

func toDomain(dto SepulkaDTO) (*sepulka.Sepulka, error) {
	code, err := kernel.UUIDFromBytes(dto.Code[:])
	if err != nil {
		return nil, err
	}

	creatorID, err := kernel.UUIDFromBytes(dto.CreatorID[:])
	if err != nil {
		return nil, err
	}

	processResponsible, err := kernelPtr(dto.Process.ResponsibleID)
	if err != nil {
		return nil, err
	}
	process, err := sepulka.RestoreProcess(
		processResponsible,
		dto.Process.IsVaccinated,
		dto.Process.IsProcessed,
		dto.Process.DateUpdated,
	)
	if err != nil {
		return nil, err
	}

	deliveryResponsible, err := kernelPtr(dto.Delivery.ResponsibleID)
	if err != nil {
		return nil, err
	}
	var method *sepulka.Method
	if dto.Delivery.Method != nil {
		m := sepulka.Method(*dto.Delivery.Method)
		method = &m
	}
	delivery, err := sepulka.RestoreDelivery(deliveryResponsible, method, dto.Delivery.DateUpdated)
	if err != nil {
		return nil, err
	}

	return sepulka.RestoreSepulka(
		code,
		sepulka.Attributes{
			Name:     dto.Name,
			IsWarm:   dto.IsWarm,
			IsSquare: dto.IsSquare,
			IsSoft:   dto.IsSoft,
			Size:     sepulka.Size(dto.Size),
		},
		sepulka.State(dto.State),
		creatorID,
		process,
		delivery,
		dto.DateCreated,
		dto.DateUpdated,
	)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent reference
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// nullable turns an optional reference into a value gorm writes as NULL.
func nullable(raw *uuid.UUID) any {
	if raw == nil {
		return nil
	}
	return *raw
}
