package queries

import (
	"errors"
	"time"

	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

var ErrListOverdueRentalsQueryIsNotConstructed = errors.New(
	"ListOverdueRentalsQuery must be created via NewListOverdueRentalsQuery constructor",
)

// ListOverdueRentalsQuery finds open rentals whose expected end date has
// already passed at the given reference instant.
type ListOverdueRentalsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewListOverdueRentalsQuery creates a query anchored at the given instant.
func NewListOverdueRentalsQuery(asOf time.Time) (ListOverdueRentalsQuery, error) {
	if asOf.IsZero() {
		return ListOverdueRentalsQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return ListOverdueRentalsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOverdueRentalsQuery) Validate() error {
	return q.guard.Validate(ErrListOverdueRentalsQueryIsNotConstructed)
}

// AsOf returns the reference instant.
func (q ListOverdueRentalsQuery) AsOf() time.Time {
	return q.asOf
}

// OverdueRentalResponse represents an open rental past its expected end date.
type OverdueRentalResponse struct {
	Identifier      string
	RiderID         string
	MotorcycleID    string
	ExpectedEndDate time.Time
}
