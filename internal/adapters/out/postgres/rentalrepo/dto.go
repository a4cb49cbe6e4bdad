// Package rentalrepo provides data transfer objects and mapping functions
// for rental persistence. Sequence ids are produced by the database and
// written back into the aggregate at insert time.
package rentalrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
)

// RentalDTO represents the database structure for persisting rental
// contracts. The active column guards the open-to-closed transition: an
// update that closes a rental only matches rows still open, so two racing
// returns cannot both commit.
type RentalDTO struct {
	ID                int             `gorm:"primaryKey;autoIncrement"`
	RiderID           string          `gorm:"column:rider_id;type:varchar(255);not null;index"`
	MotorcycleID      string          `gorm:"column:motorcycle_id;type:varchar(255);not null"`
	PlanDays          int             `gorm:"column:plan_days;type:int;not null"`
	StartDate         time.Time       `gorm:"not null"`
	EndDate           time.Time       `gorm:"not null"`
	ExpectedEndDate   time.Time       `gorm:"not null"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LateExtraDailyFee decimal.Decimal `gorm:"column:late_extra_daily_fee;type:numeric(12,2);not null"`
	Active            bool            `gorm:"not null;index"`
}

// TableName specifies the database table name for rental entities.
func (RentalDTO) TableName() string {
	return "rentals"
}

// FromDomain converts a rental aggregate to its database representation.
func FromDomain(rt *rental.Rental) RentalDTO {
	return RentalDTO{
		ID:                rt.ID(),
		RiderID:           rt.RiderID().String(),
		MotorcycleID:      rt.MotorcycleID().String(),
		PlanDays:          rt.Plan().Days(),
		StartDate:         rt.StartDate(),
		EndDate:           rt.EndDate(),
		ExpectedEndDate:   rt.ExpectedEndDate(),
		Total:             rt.Total(),
		LateExtraDailyFee: rt.LateExtraDailyFee(),
		Active:            rt.IsActive(),
	}
}

// ToDomain converts a database row to a rental aggregate.
func ToDomain(dto RentalDTO) (*rental.Rental, error) {
	riderID, err := kernel.NewID(dto.RiderID)
	if err != nil {
		return nil, err
	}

	motoID, err := kernel.NewID(dto.MotorcycleID)
	if err != nil {
		return nil, err
	}

	plan, err := rental.ParsePlan(dto.PlanDays)
	if err != nil {
		return nil, err
	}

	return rental.RestoreRental(dto.ID, riderID, motoID,
		dto.StartDate, dto.EndDate, dto.ExpectedEndDate, plan,
		dto.Total, dto.LateExtraDailyFee, dto.Active)
}
