package rental

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

// ErrPriceBreakdownIsNotConstructed is returned when using a PriceBreakdown
// that was not created via NewPriceBreakdown.
var ErrPriceBreakdownIsNotConstructed = errors.New(
	"PriceBreakdown must be created via NewPriceBreakdown constructor")

// PriceBreakdown is the immutable, itemized result of a pricing computation.
// Every numeric field is non-negative and the total always equals
// baseValue + penalty + extras; both properties are enforced at construction.
// A fresh value is produced per pricing query and never mutated.
type PriceBreakdown struct {
	// usedDays counts the billed days, inclusive of start and return day
	usedDays int
	// unusedDays counts plan days left unused on an early return
	unusedDays int
	// extraDays counts days past the expected end on a late return
	extraDays int
	// dailyPrice is the plan's price per day
	dailyPrice decimal.Decimal
	// baseValue is usedDays (capped at the plan length) times dailyPrice
	baseValue decimal.Decimal
	// penalty is the early-return charge on unused days
	penalty decimal.Decimal
	// extras is the late-return charge on extra days
	extras decimal.Decimal
	// total is baseValue + penalty + extras
	total decimal.Decimal
	// guard ensures the breakdown was properly constructed
	guard guard.ConstructorGuard
}

// NewPriceBreakdown builds a breakdown from its components, rejecting any
// negative field and computing the total. All violations are aggregated so a
// single error reports every offending field.
func NewPriceBreakdown(
	usedDays, unusedDays, extraDays int,
	dailyPrice, baseValue, penalty, extras decimal.Decimal,
) (PriceBreakdown, error) {
	if err := errors.Join(
		requireNonNegativeDays("usedDays", usedDays),
		requireNonNegativeDays("unusedDays", unusedDays),
		requireNonNegativeDays("extraDays", extraDays),
		requireNonNegativeAmount("dailyPrice", dailyPrice),
		requireNonNegativeAmount("baseValue", baseValue),
		requireNonNegativeAmount("penalty", penalty),
		requireNonNegativeAmount("extras", extras),
	); err != nil {
		return PriceBreakdown{}, err
	}

	return PriceBreakdown{
		usedDays:   usedDays,
		unusedDays: unusedDays,
		extraDays:  extraDays,
		dailyPrice: dailyPrice,
		baseValue:  baseValue,
		penalty:    penalty,
		extras:     extras,
		total:      baseValue.Add(penalty).Add(extras),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the breakdown was built via its constructor.
func (pb PriceBreakdown) Validate() error {
	return pb.guard.Validate(ErrPriceBreakdownIsNotConstructed)
}

// UsedDays returns the billed day count, inclusive of start and return day.
func (pb PriceBreakdown) UsedDays() int {
	return pb.usedDays
}

// UnusedDays returns the plan days left unused on an early return.
func (pb PriceBreakdown) UnusedDays() int {
	return pb.unusedDays
}

// ExtraDays returns the days past the expected end on a late return.
func (pb PriceBreakdown) ExtraDays() int {
	return pb.extraDays
}

// DailyPrice returns the plan's price per day.
func (pb PriceBreakdown) DailyPrice() decimal.Decimal {
	return pb.dailyPrice
}

// BaseValue returns the charge for the days used within the plan.
func (pb PriceBreakdown) BaseValue() decimal.Decimal {
	return pb.baseValue
}

// Penalty returns the early-return charge.
func (pb PriceBreakdown) Penalty() decimal.Decimal {
	return pb.penalty
}

// Extras returns the late-return charge.
func (pb PriceBreakdown) Extras() decimal.Decimal {
	return pb.extras
}

// Total returns baseValue + penalty + extras.
func (pb PriceBreakdown) Total() decimal.Decimal {
	return pb.total
}

// IsEqual compares two breakdowns field by field, using numeric equality for
// the decimal amounts.
func (pb PriceBreakdown) IsEqual(other PriceBreakdown) bool {
	return pb.usedDays == other.usedDays &&
		pb.unusedDays == other.unusedDays &&
		pb.extraDays == other.extraDays &&
		pb.dailyPrice.Equal(other.dailyPrice) &&
		pb.baseValue.Equal(other.baseValue) &&
		pb.penalty.Equal(other.penalty) &&
		pb.extras.Equal(other.extras) &&
		pb.total.Equal(other.total)
}

func requireNonNegativeDays(paramName string, days int) error {
	if days < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%d is negative", days))
	}
	return nil
}

func requireNonNegativeAmount(paramName string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is negative", amount))
	}
	return nil
}
