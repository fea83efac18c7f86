// Package userrepo persists user accounts in the users table.
package userrepo

import (
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// UserDTO is the users row. Email is nullable so that several accounts may
// omit it while non-empty addresses stay plain text.
type UserDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Username     string      `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email        null.String `gorm:"type:varchar(254)"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	Role         int         `gorm:"type:smallint;not null;default:0"`
	IsStaff      bool        `gorm:"not null;default:false"`
	IsActive     bool        `gorm:"not null;default:true"`
	DateJoined   time.Time   `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Username:     u.Username(),
		Email:        null.NewString(u.Email(), u.Email() != ""),
		PasswordHash: u.PasswordHash(),
		Role:         int(u.Role()),
		IsStaff:      u.IsStaff(),
		IsActive:     u.IsActive(),
		DateJoined:   u.DateJoined(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Username,
		dto.Email.String,
		dto.PasswordHash,
		user.Role(dto.Role),
		dto.IsStaff,
		dto.IsActive,
		dto.DateJoined,
	)
}
