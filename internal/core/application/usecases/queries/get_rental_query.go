package queries

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

var ErrGetRentalQueryIsNotConstructed = errors.New(
	"GetRentalQuery must be created via NewGetRentalQuery constructor",
)

// rentalIdentifierPrefix matches the public identifier scheme "locacao{N}".
const rentalIdentifierPrefix = "locacao"

// ParseRentalIdentifier extracts the sequence id from a public rental
// identifier such as "locacao42". A bare numeric string is accepted too.
func ParseRentalIdentifier(identifier string) (int, error) {
	identifier = strings.TrimSpace(identifier)
	numeric := strings.TrimPrefix(identifier, rentalIdentifierPrefix)

	id, err := strconv.Atoi(numeric)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("identifier",
			fmt.Errorf("%q is not a rental identifier", identifier))
	}
	return id, nil
}

// FormatRentalIdentifier renders the public "locacao{N}" form of a
// sequence id.
func FormatRentalIdentifier(id int) string {
	return fmt.Sprintf("%s%d", rentalIdentifierPrefix, id)
}

// GetRentalQuery retrieves a rental contract by its public identifier.
type GetRentalQuery struct {
	rentalID int

	guard guard.ConstructorGuard
}

// NewGetRentalQuery creates a query to fetch one rental. The identifier is
// the public "locacao{N}" form.
func NewGetRentalQuery(identifier string) (GetRentalQuery, error) {
	id, err := ParseRentalIdentifier(identifier)
	if err != nil {
		return GetRentalQuery{}, err
	}

	return GetRentalQuery{
		rentalID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRentalQuery) Validate() error {
	return q.guard.Validate(ErrGetRentalQueryIsNotConstructed)
}

// RentalID returns the parsed sequence id.
func (q GetRentalQuery) RentalID() int {
	return q.rentalID
}

// RentalResponse represents a rental contract in the read model.
type RentalResponse struct {
	Identifier      string
	RiderID         string
	MotorcycleID    string
	DailyPrice      decimal.Decimal
	Total           decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	ExpectedEndDate time.Time
	Active          bool
}
