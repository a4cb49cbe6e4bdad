package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

var ErrPreviewReturnQueryIsNotConstructed = errors.New(
	"PreviewReturnQuery must be created via NewPreviewReturnQuery constructor",
)

// PreviewReturnQuery quotes the price of returning a rental at a
// hypothetical instant, without closing it.
type PreviewReturnQuery struct {
	rentalID      int
	returnInstant time.Time

	guard guard.ConstructorGuard
}

// NewPreviewReturnQuery creates a preview query from the public rental
// identifier and the candidate return instant.
func NewPreviewReturnQuery(identifier string, returnInstant time.Time) (PreviewReturnQuery, error) {
	id, err := ParseRentalIdentifier(identifier)
	if err != nil {
		return PreviewReturnQuery{}, err
	}
	if returnInstant.IsZero() {
		return PreviewReturnQuery{}, errs.NewValueIsRequiredError("returnDate")
	}

	return PreviewReturnQuery{
		rentalID:      id,
		returnInstant: returnInstant,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q PreviewReturnQuery) Validate() error {
	return q.guard.Validate(ErrPreviewReturnQueryIsNotConstructed)
}

// RentalID returns the parsed sequence id.
func (q PreviewReturnQuery) RentalID() int {
	return q.rentalID
}

// ReturnInstant returns the candidate return instant.
func (q PreviewReturnQuery) ReturnInstant() time.Time {
	return q.returnInstant
}

// PreviewReturnResponse is the itemized quote for a hypothetical return.
type PreviewReturnResponse struct {
	Identifier string
	UsedDays   int
	UnusedDays int
	ExtraDays  int
	DailyPrice decimal.Decimal
	BaseValue  decimal.Decimal
	Penalty    decimal.Decimal
	Extras     decimal.Decimal
	Total      decimal.Decimal
}
