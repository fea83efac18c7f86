package commands

import (
	"errors"
	"strings"
	"time"

	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"
	"sepulka/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand revokes the token the caller authenticated with.
type LogoutCommand struct {
	actor     policy.Actor
	tokenID   string
	expiresAt time.Time

	guard guard.ConstructorGuard
}

func NewLogoutCommand(actor policy.Actor, tokenID string, expiresAt time.Time) (LogoutCommand, error) {
	if strings.TrimSpace(tokenID) == "" {
		return LogoutCommand{}, errs.NewValueIsRequiredError("token id")
	}
	return LogoutCommand{actor: actor, tokenID: tokenID, expiresAt: expiresAt, guard: guard.NewConstructorGuard()}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) Actor() policy.Actor {
	return c.actor
}

func (c LogoutCommand) TokenID() string {
	return c.tokenID
}

func (c LogoutCommand) ExpiresAt() time.Time {
	return c.expiresAt
}
