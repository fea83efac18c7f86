package queries

import (
	"context"

	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/policy"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListSepulkasQueryHandler struct {
	db *gorm.DB
}

func NewListSepulkasQueryHandler(db *gorm.DB) ListSepulkasQueryHandler {
	return ListSepulkasQueryHandler{db: db}
}

func (h ListSepulkasQueryHandler) Handle(ctx context.Context, query ListSepulkasQuery) (Page[SepulkaListItem], error) {
	if err := query.Validate(); err != nil {
		return Page[SepulkaListItem]{}, err
	}

	if err := policy.Authorize(query.Actor(), policy.ListSepulkas); err != nil {
		return Page[SepulkaListItem]{}, err
	}

	filter := sq.And{sq.Gt{"s.state": int(sepulka.Deleted)}}
	if state := query.State(); state != nil {
		filter = append(filter, sq.Eq{"s.state": int(*state)})
	}

	total, err := count(ctx, h.db, psql.Select("COUNT(*)").From("sepulkas s").Where(filter))
	if err != nil {
		return Page[SepulkaListItem]{}, err
	}

	statement, args, err := paginate(
		psql.Select(
			"s.code", "s.name", "s.is_warm", "s.is_square", "s.is_soft", "s.size", "s.state",
			"u.username", "s.date_created", "s.date_updated",
		).
			From("sepulkas s").
			Join("users u ON u.id = s.creator_id").
			Where(filter).
			OrderBy("s.date_created DESC", "s.code"),
		query.Page(),
	).ToSql()
	if err != nil {
		return Page[SepulkaListItem]{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(statement, args...).Rows()
	if err != nil {
		return Page[SepulkaListItem]{}, err
	}
	defer rows.Close()

	items := make([]SepulkaListItem, 0, query.Page().Size())
	for rows.Next() {
		var item SepulkaListItem
		var code uuid.UUID
		var size string
		var state int

		err = rows.Scan(
			&code,
			&item.Name,
			&item.IsWarm,
			&item.IsSquare,
			&item.IsSoft,
			&size,
			&state,
			&item.CreatorUsername,
			&item.DateCreated,
			&item.DateUpdated,
		)
		if err != nil {
			return Page[SepulkaListItem]{}, err
		}

		if item.Code, err = toKernel(code); err != nil {
			return Page[SepulkaListItem]{}, err
		}
		item.Size = sepulka.Size(size)
		item.State = sepulka.State(state)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return Page[SepulkaListItem]{}, err
	}

	return Page[SepulkaListItem]{Count: total, Page: query.Page(), Items: items}, nil
}
