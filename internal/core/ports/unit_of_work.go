package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh unit of work per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups repository calls into one transaction. Repositories
// obtained after Begin share the transaction; before Begin they run
// directly against the database.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	UserRepository() UserRepository

	SepulkaRepository() SepulkaRepository

	FlowRepository() FlowRepository
}
