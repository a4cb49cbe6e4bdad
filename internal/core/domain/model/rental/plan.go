package rental

import (
	"fmt"

	"github.com/shopspring/decimal"

	"rentmoto/internal/pkg/errs"
)

// Plan represents a rental's committed day-count tier. The numeric value of
// each constant is the plan length in days.
//
// Plan is a value object that fixes the daily price and the early-return
// penalty rate of a rental contract.
type Plan int

const (
	// PlanUnknown represents an invalid or undefined plan.
	// This value (0) helps catch uninitialized Plan values.
	PlanUnknown Plan = 0

	// PlanDays7 is the shortest tier: 7 days at 30.00 per day, 20% early-return penalty.
	PlanDays7 Plan = 7

	// PlanDays15 is the 15-day tier at 28.00 per day, 40% early-return penalty.
	PlanDays15 Plan = 15

	// PlanDays30 is the 30-day tier at 22.00 per day, no early-return penalty.
	PlanDays30 Plan = 30

	// PlanDays45 is the 45-day tier at 20.00 per day, no early-return penalty.
	PlanDays45 Plan = 45

	// PlanDays50 is the longest tier: 50 days at 18.00 per day, no early-return penalty.
	PlanDays50 Plan = 50
)

// getDailyPrices returns the pricing table, in currency units per day.
// Longer plans are cheaper per day.
func getDailyPrices() map[Plan]decimal.Decimal {
	return map[Plan]decimal.Decimal{
		PlanDays7:  decimal.NewFromInt(30),
		PlanDays15: decimal.NewFromInt(28),
		PlanDays30: decimal.NewFromInt(22),
		PlanDays45: decimal.NewFromInt(20),
		PlanDays50: decimal.NewFromInt(18),
	}
}

// getPenaltyRates returns the early-return penalty rates. Only the two
// shortest plans penalize early return.
func getPenaltyRates() map[Plan]decimal.Decimal {
	return map[Plan]decimal.Decimal{
		PlanDays7:  decimal.NewFromFloat(0.20),
		PlanDays15: decimal.NewFromFloat(0.40),
	}
}

// ParsePlan converts a raw day count into a Plan.
// Returns an error if days is not one of the five supported tiers.
func ParsePlan(days int) (Plan, error) {
	plan := Plan(days)
	if err := plan.Validate(); err != nil {
		return PlanUnknown, err
	}
	return plan, nil
}

// Validate checks that the Plan is one of the supported tiers.
func (p Plan) Validate() error {
	if _, ok := getDailyPrices()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("plan",
			fmt.Errorf("%d is not a supported plan length", int(p)))
	}
	return nil
}

// Days returns the plan length in days.
func (p Plan) Days() int {
	return int(p)
}

// DailyPrice returns the plan's price per day in currency units.
// Returns zero for an invalid plan.
func (p Plan) DailyPrice() decimal.Decimal {
	if price, ok := getDailyPrices()[p]; ok {
		return price
	}
	return decimal.Zero
}

// EarlyReturnPenaltyRate returns the rate applied to unused days when the
// motorcycle comes back before the expected end date. Zero for plans that do
// not penalize early return.
func (p Plan) EarlyReturnPenaltyRate() decimal.Decimal {
	if rate, ok := getPenaltyRates()[p]; ok {
		return rate
	}
	return decimal.Zero
}

// String returns the human-readable plan name, e.g. "30 days".
func (p Plan) String() string {
	if p.Validate() != nil {
		return "Unknown"
	}
	return fmt.Sprintf("%d days", int(p))
}
