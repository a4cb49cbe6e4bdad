package motorepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/pkg/errs"
)

// GormMotorcycleRepository implements MotorcycleRepository using GORM.
type GormMotorcycleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormMotorcycleRepository creates a new GORM motorcycle repository.
func NewGormMotorcycleRepository(db *gorm.DB, tracker aggregateTracker) *GormMotorcycleRepository {
	return &GormMotorcycleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new motorcycle to the database. A duplicate-key violation on
// the plate column surfaces as a business rule conflict, closing the race
// left open by the registration-time uniqueness pre-check.
func (r *GormMotorcycleRepository) Add(ctx context.Context, aggregate *motorcycle.Motorcycle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewBusinessRuleViolatedErrorWithCause("plate is already registered", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing motorcycle to the database.
func (r *GormMotorcycleRepository) Update(ctx context.Context, aggregate *motorcycle.Motorcycle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewBusinessRuleViolatedErrorWithCause("plate is already registered", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a motorcycle by ID.
func (r *GormMotorcycleRepository) Get(ctx context.Context, id kernel.ID) (*motorcycle.Motorcycle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MotorcycleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("motorcycleID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPlate retrieves the motorcycle carrying the given normalized plate.
func (r *GormMotorcycleRepository) GetByPlate(
	ctx context.Context, normalizedPlate string,
) (*motorcycle.Motorcycle, error) {
	var dto MotorcycleDTO
	if err := r.db.WithContext(ctx).First(&dto, "plate = ?", normalizedPlate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("plate", normalizedPlate)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithPlate reports whether any motorcycle other than excludeID
// carries the given normalized plate.
func (r *GormMotorcycleRepository) ExistsWithPlate(
	ctx context.Context, normalizedPlate string, excludeID kernel.ID,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&MotorcycleDTO{}).
		Where("plate = ?", normalizedPlate)
	if excludeID.String() != "" {
		query = query.Where("id <> ?", excludeID.String())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a motorcycle from the database.
func (r *GormMotorcycleRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MotorcycleDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("motorcycleID", id.String())
	}

	return nil
}
