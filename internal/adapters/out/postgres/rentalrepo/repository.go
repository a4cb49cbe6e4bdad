package rentalrepo

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/pkg/errs"
)

// GormRentalRepository implements RentalRepository using GORM.
type GormRentalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormRentalRepository creates a new GORM rental repository.
func NewGormRentalRepository(db *gorm.DB, tracker aggregateTracker) *GormRentalRepository {
	return &GormRentalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rental, letting the database assign the sequence id, and
// records that id on the aggregate.
func (r *GormRentalRepository) Add(ctx context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	// id 0 lets the autoincrement column produce the sequence value
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Identifier(), aggregate)
	return nil
}

// Update saves an existing rental. Closing a rental only matches rows that
// are still open; losing that race surfaces as a version error.
func (r *GormRentalRepository) Update(ctx context.Context, aggregate *rental.Rental) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)

	query := r.db.WithContext(ctx).Model(&RentalDTO{}).Where("id = ?", dto.ID)
	if !dto.Active {
		query = query.Where("active = ?", true)
	}

	result := query.Updates(map[string]any{
		"end_date": dto.EndDate,
		"total":    dto.Total,
		"active":   dto.Active,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("rental")
	}

	r.tracker.TrackAggregate(aggregate.Identifier(), aggregate)
	return nil
}

// Get retrieves a rental by its sequence id.
func (r *GormRentalRepository) Get(ctx context.Context, id int) (*rental.Rental, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("rentalID")
	}

	var dto RentalDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rentalID", strconv.Itoa(id))
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetOpenByRider retrieves the rider's single open rental.
func (r *GormRentalRepository) GetOpenByRider(ctx context.Context, riderID kernel.ID) (*rental.Rental, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	var dto RentalDTO
	err := r.db.WithContext(ctx).
		First(&dto, "rider_id = ? AND active = ?", riderID.String(), true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("riderID", riderID.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// HasOpenByRider reports whether the rider currently has an open rental.
func (r *GormRentalRepository) HasOpenByRider(ctx context.Context, riderID kernel.ID) (bool, error) {
	if err := riderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RentalDTO{}).
		Where("rider_id = ? AND active = ?", riderID.String(), true).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
