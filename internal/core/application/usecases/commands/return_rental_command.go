package commands

import (
	"errors"
	"time"

	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

var ErrReturnRentalCommandIsNotConstructed = errors.New(
	"ReturnRentalCommand must be created via NewReturnRentalCommand constructor",
)

// ReturnRentalCommand represents a request to close a rental contract at a
// given return instant.
type ReturnRentalCommand struct { //nolint:recvcheck //using for validation
	rentalID      int
	returnInstant time.Time

	guard guard.ConstructorGuard
}

// NewReturnRentalCommand creates a command to close a rental.
func NewReturnRentalCommand(rentalID int, returnInstant time.Time) (ReturnRentalCommand, error) {
	cmd := ReturnRentalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if rentalID <= 0 {
		return ReturnRentalCommand{}, errs.NewValueIsInvalidError("rentalID")
	}
	if returnInstant.IsZero() {
		return ReturnRentalCommand{}, errs.NewValueIsRequiredError("returnDate")
	}

	cmd.rentalID = rentalID
	cmd.returnInstant = returnInstant
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnRentalCommand) Validate() error {
	return c.guard.Validate(ErrReturnRentalCommandIsNotConstructed)
}

// RentalID returns the rental's sequence id.
func (c ReturnRentalCommand) RentalID() int {
	return c.rentalID
}

// ReturnInstant returns the actual return instant.
func (c ReturnRentalCommand) ReturnInstant() time.Time {
	return c.returnInstant
}
