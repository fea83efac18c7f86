package ports

import (
	"context"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"
)

type UserRepository interface {
	// Add inserts a new user. A duplicate username is a ConflictError.
	Add(ctx context.Context, u *user.User) error

	// Update writes profile, password and flags of an existing user.
	Update(ctx context.Context, u *user.User) error

	// Delete removes the user row. A user still referenced by an order is
	// reported as ValueIsInvalidError.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
