package commands

import (
	"context"
	"errors"

	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/ports"
	"sepulka/internal/pkg/errs"
)

// resolveResponsible loads the user named by a responsible field. An
// unknown username is a validation failure of that field, not a 404 of
// the addressed order.
func resolveResponsible(ctx context.Context, repo ports.UserRepository, username *string) (*user.User, error) {
	if username == nil {
		return nil, nil //nolint:nilnil // nil user clears the responsible
	}
	u, err := repo.GetByUsername(ctx, *username)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewValueIsInvalidErrorWithCause("responsible", err)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
