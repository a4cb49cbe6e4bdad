package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/pkg/errs"
)

// PreviewReturnQueryHandler rehydrates a rental and runs its pricing engine
// against a hypothetical return instant. Reads only; the rental's stored
// state is never touched.
type PreviewReturnQueryHandler struct {
	db *gorm.DB
}

// NewPreviewReturnQueryHandler creates a handler for return previews.
func NewPreviewReturnQueryHandler(db *gorm.DB) PreviewReturnQueryHandler {
	return PreviewReturnQueryHandler{db: db}
}

// Handle executes the preview.
func (h PreviewReturnQueryHandler) Handle(
	ctx context.Context,
	query PreviewReturnQuery,
) (PreviewReturnResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewReturnResponse{}, err
	}

	var (
		riderRaw, motoRaw      string
		planDays               int
		startDate, endDate     time.Time
		expectedEndDate        time.Time
		total, lateFee         decimal.Decimal
		active                 bool
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			rider_id,
			motorcycle_id,
			plan_days,
			start_date,
			end_date,
			expected_end_date,
			total,
			late_extra_daily_fee,
			active
		FROM rentals
		WHERE id = ?
	`, query.RentalID()).Row()

	err := row.Scan(
		&riderRaw,
		&motoRaw,
		&planDays,
		&startDate,
		&endDate,
		&expectedEndDate,
		&total,
		&lateFee,
		&active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return PreviewReturnResponse{}, errs.NewObjectNotFoundError("rentalID", query.RentalID())
	}
	if err != nil {
		return PreviewReturnResponse{}, err
	}

	riderID, err := kernel.NewID(riderRaw)
	if err != nil {
		return PreviewReturnResponse{}, err
	}
	motoID, err := kernel.NewID(motoRaw)
	if err != nil {
		return PreviewReturnResponse{}, err
	}
	plan, err := rental.ParsePlan(planDays)
	if err != nil {
		return PreviewReturnResponse{}, err
	}

	rt, err := rental.RestoreRental(query.RentalID(), riderID, motoID,
		startDate, endDate, expectedEndDate, plan, total, lateFee, active)
	if err != nil {
		return PreviewReturnResponse{}, err
	}

	breakdown, err := rt.CalculatePreview(query.ReturnInstant())
	if err != nil {
		return PreviewReturnResponse{}, err
	}

	return PreviewReturnResponse{
		Identifier: fmt.Sprintf("%s%d", rentalIdentifierPrefix, query.RentalID()),
		UsedDays:   breakdown.UsedDays(),
		UnusedDays: breakdown.UnusedDays(),
		ExtraDays:  breakdown.ExtraDays(),
		DailyPrice: breakdown.DailyPrice(),
		BaseValue:  breakdown.BaseValue(),
		Penalty:    breakdown.Penalty(),
		Extras:     breakdown.Extras(),
		Total:      breakdown.Total(),
	}, nil
}
