package flowrepo

import (
	"context"
	"errors"

	"sepulka/internal/core/domain/model/sepulka"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrFlowAlreadyStored = errors.New("flow already has an id")

type GormFlowRepository struct {
	db *gorm.DB
}

func NewGormFlowRepository(db *gorm.DB) *GormFlowRepository {
	return &GormFlowRepository{db: db}
}

// Add inserts an unsaved message and returns it with the generated id.
func (r *GormFlowRepository) Add(ctx context.Context, flow *sepulka.Flow) (*sepulka.Flow, error) {
	if err := flow.Validate(); err != nil {
		return nil, err
	}
	if flow.ID() != 0 {
		return nil, ErrFlowAlreadyStored
	}

	dto := fromDomain(flow)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
