package services

import (
	"time"

	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/core/domain/model/rider"
	"rentmoto/internal/pkg/errs"
)

// ErrMotorcycleNotAvailable is returned when the requested fleet unit is
// already occupied by another rental.
var ErrMotorcycleNotAvailable = errs.NewBusinessRuleViolatedError("motorcycle is already rented")

// RentalBooker is a domain service that opens a rental contract against a
// fleet unit. The workflow spans two aggregates: the rider records the new
// contract and the motorcycle is marked occupied, and neither change is
// meaningful without the other.
//
// Business rules:
//   - The rider enforces its own eligibility and single-open-rental rules
//   - The motorcycle must be free when the contract opens
//   - Both aggregate changes happen before the caller persists either
//
// Example usage:
//
//	rt, err := services.NewRentalBooker().Book(r, moto, start, end, expectedEnd, plan, now)
//	if err != nil {
//	    return err
//	}
//	// persist rt and moto within one transaction
type RentalBooker struct{}

// NewRentalBooker creates a new RentalBooker instance.
func NewRentalBooker() RentalBooker {
	return RentalBooker{}
}

// Book opens a rental for the rider on the given motorcycle and marks the
// unit occupied. The returned rental carries no sequence id until the
// persistence layer assigns one.
func (b RentalBooker) Book(
	r *rider.DeliveryRider,
	moto *motorcycle.Motorcycle,
	start time.Time,
	end time.Time,
	expectedEnd time.Time,
	plan rental.Plan,
	now time.Time,
) (*rental.Rental, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := moto.Validate(); err != nil {
		return nil, err
	}

	if moto.HasRentals() {
		return nil, ErrMotorcycleNotAvailable
	}

	rt, err := r.StartRental(moto.ID(), start, end, expectedEnd, plan)
	if err != nil {
		return nil, err
	}

	moto.MarkAsRented(now)
	return rt, nil
}
