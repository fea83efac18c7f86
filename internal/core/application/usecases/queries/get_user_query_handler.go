package queries

import (
	"context"
	"database/sql"
	"errors"

	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	actor := query.Actor()
	if err := policy.RequireAuthenticated(actor); err != nil {
		return UserView{}, err
	}
	if actor.Username() == query.Username() {
		return ViewOf(actor.User()), nil
	}
	if err := policy.Authorize(actor, policy.RetrieveUser); err != nil {
		return UserView{}, err
	}

	statement, args, err := psql.Select(userColumns...).
		From("users").
		Where("username = ?", query.Username()).
		ToSql()
	if err != nil {
		return UserView{}, err
	}

	view, err := scanUser(h.db.WithContext(ctx).Raw(statement, args...).Row())
	if errors.Is(err, sql.ErrNoRows) {
		return UserView{}, errs.NewObjectNotFoundError("user", query.Username())
	}
	if err != nil {
		return UserView{}, err
	}

	return view, nil
}
