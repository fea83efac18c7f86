package sepulkarepo

import (
	"context"
	"errors"
	"time"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgForeignKeyViolation = "23503"

type GormSepulkaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormSepulkaRepository(db *gorm.DB, tracker aggregateTracker) *GormSepulkaRepository {
	return &GormSepulkaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row first and then its process and delivery rows.
// Children that already exist are left untouched.
func (r *GormSepulkaRepository) Add(ctx context.Context, aggregate *sepulka.Sepulka) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return translate("creator", err)
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "sepulka_code"}},
		DoNothing: true,
	}
	if err := db.Omit(clause.Associations).Clauses(onConflict).Create(&dto.Process).Error; err != nil {
		return err
	}
	if err := db.Omit(clause.Associations).Clauses(onConflict).Create(&dto.Delivery).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Get loads an order with both children. Deleted orders are returned too;
// the aggregate rejects mutations on them.
func (r *GormSepulkaRepository) Get(ctx context.Context, code kernel.UUID) (*sepulka.Sepulka, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto SepulkaDTO
	err := r.db.WithContext(ctx).
		Preload("Process").
		Preload("Delivery").
		First(&dto, "code = ?", code.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sepulka", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateState writes the state column. A forward move only applies while
// the stored state is live and earlier, so a slower writer never rolls an
// order back. Deleted is written unconditionally. It returns false when
// the guard left the stored state untouched.
func (r *GormSepulkaRepository) UpdateState(ctx context.Context, aggregate *sepulka.Sepulka) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	state := aggregate.State()
	query := r.db.WithContext(ctx).
		Model(&SepulkaDTO{}).
		Where("code = ?", aggregate.Code().Bytes())
	if state != sepulka.Deleted {
		query = query.Where("state > ? AND state < ?", int(sepulka.Deleted), int(state))
	}

	result := query.Updates(map[string]any{
		"state":        int(state),
		"date_updated": aggregate.DateUpdated(),
	})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		if state == sepulka.Deleted {
			return false, errs.NewObjectNotFoundError("sepulka", aggregate.Code().String())
		}
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return true, nil
}

func (r *GormSepulkaRepository) UpdateProcessResponsible(ctx context.Context, aggregate *sepulka.Sepulka) error {
	process := aggregate.Process()
	return r.updateChild(ctx, aggregate, &ProcessDTO{}, map[string]any{
		"responsible_id": nullable(uuidPtr(process.Responsible())),
		"date_updated":   process.DateUpdated(),
	})
}

func (r *GormSepulkaRepository) UpdateProcessProperties(ctx context.Context, aggregate *sepulka.Sepulka) error {
	process := aggregate.Process()
	return r.updateChild(ctx, aggregate, &ProcessDTO{}, map[string]any{
		"is_vaccinated": process.IsVaccinated(),
		"is_processed":  process.IsProcessed(),
		"date_updated":  process.DateUpdated(),
	})
}

func (r *GormSepulkaRepository) UpdateDeliveryResponsible(ctx context.Context, aggregate *sepulka.Sepulka) error {
	delivery := aggregate.Delivery()
	return r.updateChild(ctx, aggregate, &DeliveryDTO{}, map[string]any{
		"responsible_id": nullable(uuidPtr(delivery.Responsible())),
		"date_updated":   delivery.DateUpdated(),
	})
}

func (r *GormSepulkaRepository) UpdateDeliveryMethod(ctx context.Context, aggregate *sepulka.Sepulka) error {
	delivery := aggregate.Delivery()

	var method any
	if m := delivery.Method(); m != nil {
		method = m.String()
	}

	return r.updateChild(ctx, aggregate, &DeliveryDTO{}, map[string]any{
		"method":       method,
		"date_updated": delivery.DateUpdated(),
	})
}

// updateChild writes only the given columns of one child row and bumps the
// order's date_updated.
func (r *GormSepulkaRepository) updateChild(
	ctx context.Context,
	aggregate *sepulka.Sepulka,
	model any,
	columns map[string]any,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	code := aggregate.Code()
	db := r.db.WithContext(ctx)

	result := db.Model(model).Where("sepulka_code = ?", code.Bytes()).Updates(columns)
	if result.Error != nil {
		return translate("responsible", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("sepulka", code.String(), gorm.ErrRecordNotFound)
	}

	if err := r.touch(db, code, aggregate.DateUpdated()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(code, aggregate)
	return nil
}

func (r *GormSepulkaRepository) touch(db *gorm.DB, code kernel.UUID, at time.Time) error {
	return db.Model(&SepulkaDTO{}).
		Where("code = ?", code.Bytes()).
		Update("date_updated", at).Error
}

func translate(paramName string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return errs.NewValueIsInvalidErrorWithCause(paramName, errors.New("referenced user does not exist"))
	}
	return err
}
