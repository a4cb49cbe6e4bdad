package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/pkg/errs"
)

// GetRentalQueryHandler fetches a rental contract from the database.
type GetRentalQueryHandler struct {
	db *gorm.DB
}

// NewGetRentalQueryHandler creates a handler for rental lookups.
func NewGetRentalQueryHandler(db *gorm.DB) GetRentalQueryHandler {
	return GetRentalQueryHandler{db: db}
}

// Handle executes the query. The daily price is derived from the stored plan
// rather than persisted, keeping the pricing table in one place.
func (h GetRentalQueryHandler) Handle(
	ctx context.Context,
	query GetRentalQuery,
) (RentalResponse, error) {
	if err := query.Validate(); err != nil {
		return RentalResponse{}, err
	}

	var resp RentalResponse
	var planDays int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			rider_id,
			motorcycle_id,
			plan_days,
			total,
			start_date,
			end_date,
			expected_end_date,
			active
		FROM rentals
		WHERE id = ?
	`, query.RentalID()).Row()

	err := row.Scan(
		&resp.RiderID,
		&resp.MotorcycleID,
		&planDays,
		&resp.Total,
		&resp.StartDate,
		&resp.EndDate,
		&resp.ExpectedEndDate,
		&resp.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return RentalResponse{}, errs.NewObjectNotFoundError("rentalID", query.RentalID())
	}
	if err != nil {
		return RentalResponse{}, err
	}

	plan, err := rental.ParsePlan(planDays)
	if err != nil {
		return RentalResponse{}, err
	}

	resp.Identifier = fmt.Sprintf("%s%d", rentalIdentifierPrefix, query.RentalID())
	resp.DailyPrice = plan.DailyPrice()
	return resp, nil
}
