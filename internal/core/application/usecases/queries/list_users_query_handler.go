package queries

import (
	"context"

	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/domain/policy"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var userColumns = []string{"id", "username", "email", "role", "is_staff", "is_active", "date_joined"}

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) (Page[UserView], error) {
	if err := query.Validate(); err != nil {
		return Page[UserView]{}, err
	}

	if err := policy.Authorize(query.Actor(), policy.ListUsers); err != nil {
		return Page[UserView]{}, err
	}

	filter := sq.And{}
	if role := query.Role(); role != nil {
		filter = append(filter, sq.Eq{"role": int(*role)})
	}

	total, err := count(ctx, h.db, psql.Select("COUNT(*)").From("users").Where(filter))
	if err != nil {
		return Page[UserView]{}, err
	}

	statement, args, err := paginate(
		psql.Select(userColumns...).From("users").Where(filter).OrderBy("username"),
		query.Page(),
	).ToSql()
	if err != nil {
		return Page[UserView]{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(statement, args...).Rows()
	if err != nil {
		return Page[UserView]{}, err
	}
	defer rows.Close()

	items := make([]UserView, 0, query.Page().Size())
	for rows.Next() {
		view, scanErr := scanUser(rows)
		if scanErr != nil {
			return Page[UserView]{}, scanErr
		}
		items = append(items, view)
	}

	if err = rows.Err(); err != nil {
		return Page[UserView]{}, err
	}

	return Page[UserView]{Count: total, Page: query.Page(), Items: items}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (UserView, error) {
	var view UserView
	var id uuid.UUID
	var email null.String
	var role int

	if err := row.Scan(&id, &view.Username, &email, &role, &view.IsStaff, &view.IsActive, &view.DateJoined); err != nil {
		return UserView{}, err
	}

	kid, err := toKernel(id)
	if err != nil {
		return UserView{}, err
	}
	view.ID = kid
	view.Email = email.String
	view.Role = user.Role(role)
	return view, nil
}
