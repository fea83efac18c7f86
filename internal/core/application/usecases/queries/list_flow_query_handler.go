package queries

import (
	"context"
	"iter"

	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListFlowQueryHandler struct {
	db *gorm.DB
}

func NewListFlowQueryHandler(db *gorm.DB) ListFlowQueryHandler {
	return ListFlowQueryHandler{db: db}
}

// Handle returns one page of messages ordered by date_created, then id.
func (h ListFlowQueryHandler) Handle(ctx context.Context, query ListFlowQuery) (Page[FlowItem], error) {
	if err := query.Validate(); err != nil {
		return Page[FlowItem]{}, err
	}

	if err := policy.Authorize(query.Actor(), policy.ListFlow); err != nil {
		return Page[FlowItem]{}, err
	}

	exists, err := count(ctx, h.db,
		psql.Select("COUNT(*)").From("sepulkas").Where("code = ?", query.Code().Bytes()))
	if err != nil {
		return Page[FlowItem]{}, err
	}
	if exists == 0 {
		return Page[FlowItem]{}, errs.NewObjectNotFoundError("sepulka", query.Code().String())
	}

	filter := psql.Select("COUNT(*)").From("sepulka_flows").Where("sepulka_code = ?", query.Code().Bytes())
	total, err := count(ctx, h.db, filter)
	if err != nil {
		return Page[FlowItem]{}, err
	}

	statement, args, err := paginate(
		psql.Select("id", "message", "date_created").
			From("sepulka_flows").
			Where("sepulka_code = ?", query.Code().Bytes()).
			OrderBy("date_created", "id"),
		query.Page(),
	).ToSql()
	if err != nil {
		return Page[FlowItem]{}, err
	}

	items := make([]FlowItem, 0, query.Page().Size())
	if err = h.db.WithContext(ctx).Raw(statement, args...).Scan(&items).Error; err != nil {
		return Page[FlowItem]{}, err
	}

	return Page[FlowItem]{Count: total, Page: query.Page(), Items: items}, nil
}

// Iterate walks the whole history page by page, starting at the query's
// page. Iteration stops at the first error, which is yielded once.
//
// Example:
//
//	for item, err := range handler.Iterate(ctx, query) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(item.Message)
//	}
func (h ListFlowQueryHandler) Iterate(ctx context.Context, query ListFlowQuery) iter.Seq2[FlowItem, error] {
	return func(yield func(FlowItem, error) bool) {
		for {
			page, err := h.Handle(ctx, query)
			if err != nil {
				yield(FlowItem{}, err)
				return
			}

			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}

			if !page.HasNext() || len(page.Items) == 0 {
				return
			}
			query = query.withPage(query.Page().Next())
		}
	}
}
