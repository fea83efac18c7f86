package pgtest

import (
	"context"

	"sepulka/internal/adapters/out/postgres/sepulkarepo"
	"sepulka/internal/adapters/out/postgres/userrepo"
	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/model/user"
)

type tracker struct{}

func (tracker) TrackAggregate(kernel.UUID, any) {}

// SeedUser stores an active user with a fixed hash.
func (d *Database) SeedUser(ctx context.Context, username string, role user.Role, staff bool) (*user.User, error) {
	u, err := user.NewUser(username, "", "hash:"+username, role)
	if err != nil {
		return nil, err
	}
	if staff {
		u.GrantStaff()
	}
	if err = userrepo.NewGormUserRepository(d.DB, tracker{}).Add(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SeedSepulka stores a new order created by creator.
func (d *Database) SeedSepulka(ctx context.Context, creator *user.User, name string) (*sepulka.Sepulka, error) {
	s, err := sepulka.NewSepulka(creator, sepulka.Attributes{Name: name})
	if err != nil {
		return nil, err
	}
	if err = sepulkarepo.NewGormSepulkaRepository(d.DB, tracker{}).Add(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
