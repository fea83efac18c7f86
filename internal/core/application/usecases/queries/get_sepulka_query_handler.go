package queries

import (
	"context"
	"database/sql"
	"errors"

	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetSepulkaQueryHandler struct {
	db *gorm.DB
}

func NewGetSepulkaQueryHandler(db *gorm.DB) GetSepulkaQueryHandler {
	return GetSepulkaQueryHandler{db: db}
}

func (h GetSepulkaQueryHandler) Handle(ctx context.Context, query GetSepulkaQuery) (SepulkaDetails, error) {
	if err := query.Validate(); err != nil {
		return SepulkaDetails{}, err
	}

	if err := policy.Authorize(query.Actor(), policy.RetrieveSepulka); err != nil {
		return SepulkaDetails{}, err
	}

	statement, args, err := psql.Select(
		"s.code", "s.name", "s.is_warm", "s.is_square", "s.is_soft", "s.size", "s.state",
		"s.creator_id", "c.username", "s.date_created", "s.date_updated",
		"pu.username", "p.is_vaccinated", "p.is_processed", "p.date_updated",
		"du.username", "d.method", "d.date_updated",
	).
		From("sepulkas s").
		Join("users c ON c.id = s.creator_id").
		Join("sepulka_processes p ON p.sepulka_code = s.code").
		LeftJoin("users pu ON pu.id = p.responsible_id").
		Join("sepulka_deliveries d ON d.sepulka_code = s.code").
		LeftJoin("users du ON du.id = d.responsible_id").
		Where("s.code = ?", query.Code().Bytes()).
		ToSql()
	if err != nil {
		return SepulkaDetails{}, err
	}

	var details SepulkaDetails
	var code, creatorID uuid.UUID
	var size string
	var state int

	row := h.db.WithContext(ctx).Raw(statement, args...).Row()
	err = row.Scan(
		&code,
		&details.Name,
		&details.IsWarm,
		&details.IsSquare,
		&details.IsSoft,
		&size,
		&state,
		&creatorID,
		&details.CreatorUsername,
		&details.DateCreated,
		&details.DateUpdated,
		&details.Process.Responsible,
		&details.Process.IsVaccinated,
		&details.Process.IsProcessed,
		&details.Process.DateUpdated,
		&details.Delivery.Responsible,
		&details.Delivery.Method,
		&details.Delivery.DateUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return SepulkaDetails{}, errs.NewObjectNotFoundError("sepulka", query.Code().String())
	}
	if err != nil {
		return SepulkaDetails{}, err
	}

	if details.Code, err = toKernel(code); err != nil {
		return SepulkaDetails{}, err
	}
	if details.CreatorID, err = toKernel(creatorID); err != nil {
		return SepulkaDetails{}, err
	}
	details.Size = sepulka.Size(size)
	details.State = sepulka.State(state)

	return details, nil
}
