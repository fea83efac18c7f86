package commands

import (
	"context"

	"sepulka/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	SepulkaRepoFactory interface {
		SepulkaRepository() ports.SepulkaRepository
	}

	FlowRepoFactory interface {
		FlowRepository() ports.FlowRepository
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	SepulkaUoW interface {
		TxManager
		UserRepoFactory
		SepulkaRepoFactory
		FlowRepoFactory
	}

	SepulkaUoWFactory interface {
		Create() SepulkaUoW
	}
)
