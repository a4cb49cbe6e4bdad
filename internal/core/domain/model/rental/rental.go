package rental

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

// identifierPrefix builds the public rental identifier from the sequence id.
const identifierPrefix = "locacao"

// Domain errors for rental operations.
var (
	// ErrRentalIsNotConstructed is returned when using an improperly initialized Rental.
	ErrRentalIsNotConstructed = errors.New("Rental must be created via NewRental constructor")
	// ErrRentalAlreadyClosed is returned when closing a rental a second time.
	ErrRentalAlreadyClosed = errs.NewBusinessRuleViolatedError("rental is already closed")
	// ErrRentalIDAlreadyAssigned is returned when the persistence layer tries
	// to assign a sequence id to a rental that already has one.
	ErrRentalIDAlreadyAssigned = errs.NewBusinessRuleViolatedError("rental id is already assigned")
)

// defaultLateExtraDailyFee is the surcharge per day past the expected end date.
func defaultLateExtraDailyFee() decimal.Decimal {
	return decimal.NewFromInt(50)
}

// Rental is the contract between a delivery rider and a motorcycle over a
// billing plan. It owns the pricing engine: CalculatePreview quotes any
// hypothetical return instant without side effects, and InformReturn commits
// one such quote as the final charge.
//
// State machine: Open (active=true) -> Closed (active=false) via InformReturn.
// Closing is irreversible; there is no reopen path. CalculatePreview is
// available in either state since it is read-only.
//
// The sequence id is assigned by the persistence layer through AssignID; a
// fresh rental carries id 0 until persisted.
type Rental struct {
	// id is the persistence-assigned sequence number, 0 until assigned
	id int
	// riderID references the delivery rider holding the contract
	riderID kernel.ID
	// motorcycleID references the rented fleet unit
	motorcycleID kernel.ID
	// plan fixes the billing tier and daily price
	plan Plan
	// startDate is the contract start instant
	startDate time.Time
	// expectedEndDate is the return date the renter committed to
	expectedEndDate time.Time
	// endDate is the assumed return instant, replaced by the actual one at close
	endDate time.Time
	// total is the contract charge, recomputed once at close
	total decimal.Decimal
	// lateExtraDailyFee is the surcharge per day past expectedEndDate
	lateExtraDailyFee decimal.Decimal
	// active is true while the rental is open
	active bool
	// guard ensures the rental was properly constructed
	guard guard.ConstructorGuard
}

// NewRental creates an open rental contract.
//
// Validation: both ids must be non-blank, the plan must be a supported tier,
// and neither end nor expectedEnd may precede start. The initial total is the
// contract's face value, computed by previewing a return exactly on the
// expected end date.
func NewRental(
	riderID kernel.ID,
	motorcycleID kernel.ID,
	start time.Time,
	end time.Time,
	expectedEnd time.Time,
	plan Plan,
) (*Rental, error) {
	r := &Rental{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setRiderID(riderID),
		r.setMotorcycleID(motorcycleID),
		r.setPlan(plan),
		r.setDates(start, end, expectedEnd),
	); err != nil {
		return nil, err
	}

	r.lateExtraDailyFee = defaultLateExtraDailyFee()
	r.active = true

	breakdown, err := r.CalculatePreview(expectedEnd)
	if err != nil {
		return nil, err
	}
	r.total = breakdown.Total()

	return r, nil
}

// RestoreRental reconstructs a Rental from persistent storage, including its
// assigned sequence id, recorded charge, and open/closed state.
func RestoreRental(
	id int,
	riderID kernel.ID,
	motorcycleID kernel.ID,
	start time.Time,
	end time.Time,
	expectedEnd time.Time,
	plan Plan,
	total decimal.Decimal,
	lateExtraDailyFee decimal.Decimal,
	active bool,
) (*Rental, error) {
	r := &Rental{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setRiderID(riderID),
		r.setMotorcycleID(motorcycleID),
		r.setPlan(plan),
	); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	r.id = id
	r.startDate = start
	r.endDate = end
	r.expectedEndDate = expectedEnd
	r.total = total
	r.lateExtraDailyFee = lateExtraDailyFee
	r.active = active
	return r, nil
}

// AssignID records the sequence id handed out by the persistence layer.
// It may be called exactly once, with a positive id.
func (r *Rental) AssignID(id int) error {
	if r.id != 0 {
		return ErrRentalIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	r.id = id
	return nil
}

// Validate checks that the Rental was built via a constructor.
func (r *Rental) Validate() error {
	if r == nil {
		return ErrRentalIsNotConstructed
	}
	return r.guard.Validate(ErrRentalIsNotConstructed)
}

// ID returns the persistence-assigned sequence id, 0 if not yet assigned.
func (r *Rental) ID() int {
	return r.id
}

// Identifier returns the public identifier, e.g. "locacao1".
func (r *Rental) Identifier() string {
	return fmt.Sprintf("%s%d", identifierPrefix, r.id)
}

// RiderID returns the delivery rider's identifier.
func (r *Rental) RiderID() kernel.ID {
	return r.riderID
}

// MotorcycleID returns the rented motorcycle's identifier.
func (r *Rental) MotorcycleID() kernel.ID {
	return r.motorcycleID
}

// Plan returns the billing tier.
func (r *Rental) Plan() Plan {
	return r.plan
}

// StartDate returns the contract start instant.
func (r *Rental) StartDate() time.Time {
	return r.startDate
}

// ExpectedEndDate returns the committed return date.
func (r *Rental) ExpectedEndDate() time.Time {
	return r.expectedEndDate
}

// EndDate returns the assumed return instant, or the actual one once closed.
func (r *Rental) EndDate() time.Time {
	return r.endDate
}

// ReturnDate is an alias of EndDate for the read side.
func (r *Rental) ReturnDate() time.Time {
	return r.endDate
}

// Total returns the contract charge: the face value while open, the final
// charge once closed.
func (r *Rental) Total() decimal.Decimal {
	return r.total
}

// DailyPrice returns the plan's price per day.
func (r *Rental) DailyPrice() decimal.Decimal {
	return r.plan.DailyPrice()
}

// LateExtraDailyFee returns the surcharge per day past the expected end.
func (r *Rental) LateExtraDailyFee() decimal.Decimal {
	return r.lateExtraDailyFee
}

// IsActive reports whether the rental is still open.
func (r *Rental) IsActive() bool {
	return r.active
}

// CalculatePreview prices a hypothetical return at the given instant.
//
// The computation is pure: it may be called any number of times, in either
// state, and never mutates the rental. All day arithmetic happens at calendar
// day granularity after truncating start, expected end, and return instant to
// UTC midnight.
//
// Returns an out-of-range error when the truncated return instant precedes
// the truncated start date. Exactly one of penalty or extras can be positive:
// penalty on early return (unused plan days, short plans only), extras on
// late return (flat fee per extra day), both zero on an on-time return.
func (r *Rental) CalculatePreview(returnInstant time.Time) (PriceBreakdown, error) {
	start := truncateToUTCDay(r.startDate)
	expectedEnd := truncateToUTCDay(r.expectedEndDate)
	ret := truncateToUTCDay(returnInstant)

	if ret.Before(start) {
		return PriceBreakdown{}, errs.NewValueIsOutOfRangeError("returnDate",
			ret.Format(time.DateOnly), start.Format(time.DateOnly), "unbounded")
	}

	planDays := r.plan.Days()
	usedDaysInclusive := daysBetween(start, ret) + 1

	dailyPrice := r.plan.DailyPrice()
	usedWithinPlan := minInt(usedDaysInclusive, planDays)
	baseValue := dailyPrice.Mul(decimal.NewFromInt(int64(usedWithinPlan)))

	unusedDays := 0
	penalty := decimal.Zero
	if ret.Before(expectedEnd) {
		unusedDays = planDays - usedWithinPlan
		if unusedDays > 0 {
			penalty = dailyPrice.
				Mul(decimal.NewFromInt(int64(unusedDays))).
				Mul(r.plan.EarlyReturnPenaltyRate())
		}
	}

	extraDays := 0
	extras := decimal.Zero
	if ret.After(expectedEnd) {
		extraDays = daysBetween(expectedEnd, ret)
		extras = r.lateExtraDailyFee.Mul(decimal.NewFromInt(int64(extraDays)))
	}

	return NewPriceBreakdown(
		usedDaysInclusive, unusedDays, extraDays,
		dailyPrice, baseValue, penalty, extras,
	)
}

// InformReturn closes the rental at the given instant, committing the
// corresponding breakdown as the final charge. It is the only mutator of
// endDate and total, may succeed at most once per rental, and fails with a
// conflict on an already-closed rental regardless of argument.
func (r *Rental) InformReturn(returnInstant time.Time) (PriceBreakdown, error) {
	if !r.active {
		return PriceBreakdown{}, ErrRentalAlreadyClosed
	}

	breakdown, err := r.CalculatePreview(returnInstant)
	if err != nil {
		return PriceBreakdown{}, err
	}

	r.endDate = returnInstant
	r.total = breakdown.Total()
	r.active = false
	return breakdown, nil
}

// setRiderID sets the rider reference with validation.
func (r *Rental) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	r.riderID = riderID
	return nil
}

// setMotorcycleID sets the motorcycle reference with validation.
func (r *Rental) setMotorcycleID(motorcycleID kernel.ID) error {
	if err := motorcycleID.Validate(); err != nil {
		return err
	}
	r.motorcycleID = motorcycleID
	return nil
}

// setPlan sets the billing tier with validation.
func (r *Rental) setPlan(plan Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	r.plan = plan
	return nil
}

// setDates validates the date ordering at creation: neither the assumed end
// nor the expected end may precede the start.
func (r *Rental) setDates(start, end, expectedEnd time.Time) error {
	if end.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause("endDate",
			fmt.Errorf("end date %s precedes start date %s",
				end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	if expectedEnd.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause("expectedEndDate",
			fmt.Errorf("expected end date %s precedes start date %s",
				expectedEnd.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	r.startDate = start
	r.endDate = end
	r.expectedEndDate = expectedEnd
	return nil
}

// truncateToUTCDay maps an instant to the UTC midnight of its calendar day.
func truncateToUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b; both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
