package queries

import (
	"context"

	"sepulka/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// psql builds statements with "?" placeholders, which gorm rebinds for the
// active dialect.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func count(ctx context.Context, db *gorm.DB, builder sq.SelectBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err = db.WithContext(ctx).Raw(query, args...).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func paginate(builder sq.SelectBuilder, page kernel.Page) sq.SelectBuilder {
	return builder.
		Limit(uint64(page.Limit())).   //nolint:gosec // page size is bounded by kernel.MaxPageSize
		Offset(uint64(page.Offset())) //nolint:gosec // offset is never negative
}

func toKernel(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
