package http

import (
	"sepulka/internal/core/application/usecases/commands"

	"github.com/aarondl/null/v8"
)

type CreateSepulkaRequest struct {
	Name     string `json:"name"      validate:"required,max=128"`
	IsWarm   bool   `json:"is_warm"`
	IsSquare bool   `json:"is_square"`
	IsSoft   bool   `json:"is_soft"`
	Size     string `json:"size"      validate:"omitempty,oneof=XS S M L XL XXL"`
}

// AssignResponsibleRequest replaces the process responsible. A missing or
// null responsible clears it.
type AssignResponsibleRequest struct {
	Responsible *string `json:"responsible"`
}

// ConveyorRequest updates the process flags. Missing fields keep their
// stored value.
type ConveyorRequest struct {
	IsVaccinated *bool `json:"is_vaccinated"`
	IsProcessed  *bool `json:"is_processed"`
}

// DeliveryRequest patches the delivery stage. Each field may be absent
// (keep), null (clear) or a value (set).
type DeliveryRequest struct {
	Responsible OptionalString `json:"responsible"`
	Method      OptionalString `json:"method"`
}

type AppendFlowRequest struct {
	Message string `json:"message" validate:"required,max=256"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email"    validate:"omitempty,email,max=254"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// UpdateUserRequest changes a profile. is_staff is not part of it and is
// ignored when sent.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,max=150"`
	Email    *string `json:"email"    validate:"omitempty,email,max=254"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// OptionalString tells an absent JSON field apart from an explicit null.
type OptionalString struct {
	Present bool
	Value   null.String
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	return o.Value.UnmarshalJSON(data)
}

// Patch converts the field into a command patch.
func (o OptionalString) Patch() commands.Patch[string] {
	switch {
	case !o.Present:
		return commands.Keep[string]()
	case !o.Value.Valid:
		return commands.Clear[string]()
	default:
		return commands.Set(o.Value.String)
	}
}
