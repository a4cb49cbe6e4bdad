package riderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rider"
	"rentmoto/internal/pkg/errs"
)

// GormRiderRepository implements RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider to the database. Duplicate-key violations on the
// cnpj or cnh_number columns surface as business rule conflicts, closing
// the race left open by the registration-time predicates.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.DeliveryRider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Rentals").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewBusinessRuleViolatedErrorWithCause(
				"cnpj or cnh number is already registered", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing rider to the database. Rentals are persisted
// through the rental repository, never here.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.DeliveryRider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Omit("Rentals").Save(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewBusinessRuleViolatedErrorWithCause(
				"cnpj or cnh number is already registered", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a rider by ID with the rental history preloaded.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.ID) (*rider.DeliveryRider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).Preload("Rentals").First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("riderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithCNPJ reports whether any rider holds the given normalized cnpj.
func (r *GormRiderRepository) ExistsWithCNPJ(ctx context.Context, normalizedCNPJ string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RiderDTO{}).
		Where("cnpj = ?", normalizedCNPJ).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ExistsWithCNHNumber reports whether any rider holds the given license number.
func (r *GormRiderRepository) ExistsWithCNHNumber(ctx context.Context, cnhNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RiderDTO{}).
		Where("cnh_number = ?", cnhNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
