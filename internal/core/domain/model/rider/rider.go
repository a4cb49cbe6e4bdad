package rider

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrDeliveryRiderIsNotConstructed is returned when using an improperly initialized DeliveryRider.
	ErrDeliveryRiderIsNotConstructed = errors.New(
		"DeliveryRider must be created via RegisterRider constructor")
	// ErrNameIsRequired is returned when the rider name is blank.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCNHIsNotEligible is returned when the license type does not permit motorcycles.
	ErrCNHIsNotEligible = errs.NewValueIsInvalidError("cnhType must be A or A+B")
	// ErrCNPJAlreadyRegistered is returned when another rider holds the same CNPJ.
	ErrCNPJAlreadyRegistered = errs.NewBusinessRuleViolatedError("cnpj is already registered")
	// ErrCNHNumberAlreadyRegistered is returned when another rider holds the same license number.
	ErrCNHNumberAlreadyRegistered = errs.NewBusinessRuleViolatedError("cnh number is already registered")
	// ErrRiderIsInactive is returned when an inactive rider tries to open a rental.
	ErrRiderIsInactive = errs.NewBusinessRuleViolatedError("rider is inactive")
	// ErrRiderIsNotEligible is returned when a rider without a motorcycle
	// license tries to open a rental.
	ErrRiderIsNotEligible = errs.NewBusinessRuleViolatedError(
		"rider license does not permit motorcycles")
	// ErrRiderHasOpenRental is returned when a rider with an open rental tries to open another.
	ErrRiderHasOpenRental = errs.NewBusinessRuleViolatedError("rider already has an open rental")
	// ErrRiderHasNoOpenRental is returned when previewing a return with no rental open.
	ErrRiderHasNoOpenRental = errs.NewBusinessRuleViolatedError("rider has no open rental")
)

// ExistencePredicate reports whether a candidate unique value is already
// taken. Implementations query the persistence layer's current state; the
// check is not atomic with the later commit, so storage must also carry a
// hard uniqueness constraint.
type ExistencePredicate func(value string) bool

// DeliveryRider is the aggregate root for a registered operator: identity,
// CNPJ, license, and the rentals it has opened. At most one of those rentals
// may be open at a time, enforced by StartRental.
type DeliveryRider struct {
	// id is the caller-supplied unique identifier
	id kernel.ID
	// name is the rider's display name
	name string
	// cnpj is the registration number, normalized to digits only
	cnpj string
	// birthDate is the rider's date of birth
	birthDate time.Time
	// cnh is the current license credential
	cnh CNH
	// rentals holds the rider's rental history, open rental included
	rentals []*rental.Rental
	// active is false once the rider is deactivated
	active bool
	// createdAt is the registration instant
	createdAt time.Time
	// updatedAt is the last modification instant, nil if never modified
	updatedAt *time.Time
	// guard ensures the rider was properly constructed
	guard guard.ConstructorGuard
}

// NormalizeCNPJ strips everything but digits from a raw CNPJ, so formatted
// variants like "12.345.678/0001-99" and "12345678000199" compare equal.
// Pure function, used at registration and for storage-level lookups.
func NormalizeCNPJ(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RegisterRider creates an active DeliveryRider.
//
// Field validation errors (blank values, ineligible license type) are
// aggregated and returned together. The two predicates are then consulted
// with the normalized CNPJ and the trimmed license number; a positive answer
// from either is a uniqueness conflict.
func RegisterRider(
	id kernel.ID,
	cnpj string,
	name string,
	birthDate time.Time,
	cnh CNH,
	cnpjExists ExistencePredicate,
	cnhNumberExists ExistencePredicate,
	now time.Time,
) (*DeliveryRider, error) {
	r := &DeliveryRider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCNPJ(cnpj),
		r.setName(name),
		r.setCNH(cnh),
	); err != nil {
		return nil, err
	}

	if cnpjExists(r.cnpj) {
		return nil, ErrCNPJAlreadyRegistered
	}
	if cnhNumberExists(r.cnh.Number()) {
		return nil, ErrCNHNumberAlreadyRegistered
	}

	r.birthDate = birthDate
	r.active = true
	r.createdAt = now.UTC()
	return r, nil
}

// RestoreRider reconstructs a DeliveryRider from persistent storage. The
// uniqueness predicates are not consulted; storage already guarantees them.
func RestoreRider(
	id kernel.ID,
	cnpj string,
	name string,
	birthDate time.Time,
	cnh CNH,
	rentals []*rental.Rental,
	active bool,
	createdAt time.Time,
	updatedAt *time.Time,
) (*DeliveryRider, error) {
	r := &DeliveryRider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCNPJ(cnpj),
		r.setName(name),
		r.setCNH(cnh),
	); err != nil {
		return nil, err
	}

	r.birthDate = birthDate
	r.rentals = rentals
	r.active = active
	r.createdAt = createdAt
	r.updatedAt = updatedAt
	return r, nil
}

// Validate checks that the DeliveryRider was built via a constructor.
func (r *DeliveryRider) Validate() error {
	if r == nil {
		return ErrDeliveryRiderIsNotConstructed
	}
	return r.guard.Validate(ErrDeliveryRiderIsNotConstructed)
}

// ID returns the rider's identifier.
func (r *DeliveryRider) ID() kernel.ID {
	return r.id
}

// Name returns the rider's display name.
func (r *DeliveryRider) Name() string {
	return r.name
}

// CNPJ returns the normalized, digits-only registration number.
func (r *DeliveryRider) CNPJ() string {
	return r.cnpj
}

// BirthDate returns the rider's date of birth.
func (r *DeliveryRider) BirthDate() time.Time {
	return r.birthDate
}

// CNH returns the current license credential.
func (r *DeliveryRider) CNH() CNH {
	return r.cnh
}

// Rentals returns the rider's rental history.
func (r *DeliveryRider) Rentals() []*rental.Rental {
	return r.rentals
}

// IsActive reports whether the rider may open rentals.
func (r *DeliveryRider) IsActive() bool {
	return r.active
}

// CreatedAt returns the registration instant.
func (r *DeliveryRider) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last modification instant, nil if never modified.
func (r *DeliveryRider) UpdatedAt() *time.Time {
	return r.updatedAt
}

// OpenRental returns the rider's single open rental, nil if none.
func (r *DeliveryRider) OpenRental() *rental.Rental {
	for _, rt := range r.rentals {
		if rt.IsActive() {
			return rt
		}
	}
	return nil
}

// Rename replaces the display name and marks the rider modified.
func (r *DeliveryRider) Rename(name string, now time.Time) error {
	if err := r.setName(name); err != nil {
		return err
	}
	r.touch(now)
	return nil
}

// UpdateCNH replaces the license credential, re-validating motorcycle
// eligibility, and marks the rider modified.
func (r *DeliveryRider) UpdateCNH(cnh CNH, now time.Time) error {
	if err := r.setCNH(cnh); err != nil {
		return err
	}
	r.touch(now)
	return nil
}

// UpdateCNHPhoto rebuilds the license with the given photo reference,
// preserving type and number. The reference must be non-blank and end in
// ".png" or ".bmp".
func (r *DeliveryRider) UpdateCNHPhoto(reference string, now time.Time) error {
	cnh, err := r.cnh.WithPhoto(reference)
	if err != nil {
		return err
	}
	r.cnh = cnh
	r.touch(now)
	return nil
}

// StartRental opens a new rental contract for this rider.
//
// Conflicts: the rider must be active, hold a motorcycle-eligible license,
// and have no rental currently open. The new rental is recorded in the
// rider's collection and returned; it carries no sequence id until the
// persistence layer assigns one.
func (r *DeliveryRider) StartRental(
	motorcycleID kernel.ID,
	start time.Time,
	end time.Time,
	expectedEnd time.Time,
	plan rental.Plan,
) (*rental.Rental, error) {
	if !r.active {
		return nil, ErrRiderIsInactive
	}
	if !r.cnh.Type().IsMotorcycleEligible() {
		return nil, ErrRiderIsNotEligible
	}
	if r.OpenRental() != nil {
		return nil, ErrRiderHasOpenRental
	}

	rt, err := rental.NewRental(r.id, motorcycleID, start, end, expectedEnd, plan)
	if err != nil {
		return nil, err
	}
	r.rentals = append(r.rentals, rt)
	return rt, nil
}

// PreviewRental quotes the total charge for returning the rider's open
// rental at the given instant. Fails with a conflict when no rental is open,
// and with an invalid-argument error when the instant precedes the rental's
// start date.
func (r *DeliveryRider) PreviewRental(returnInstant time.Time) (rental.PriceBreakdown, error) {
	open := r.OpenRental()
	if open == nil {
		return rental.PriceBreakdown{}, ErrRiderHasNoOpenRental
	}

	breakdown, err := open.CalculatePreview(returnInstant)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsOutOfRange) {
			return rental.PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause("returnDate", err)
		}
		return rental.PriceBreakdown{}, err
	}
	return breakdown, nil
}

// setID sets the identifier with validation.
func (r *DeliveryRider) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setCNPJ normalizes and sets the registration number.
func (r *DeliveryRider) setCNPJ(raw string) error {
	normalized := NormalizeCNPJ(raw)
	if normalized == "" {
		return errs.NewValueIsRequiredError("cnpj")
	}
	r.cnpj = normalized
	return nil
}

// setName sets the display name with validation.
func (r *DeliveryRider) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

// setCNH sets the license, enforcing motorcycle eligibility.
func (r *DeliveryRider) setCNH(cnh CNH) error {
	if err := cnh.Validate(); err != nil {
		return err
	}
	if !cnh.Type().IsMotorcycleEligible() {
		return ErrCNHIsNotEligible
	}
	r.cnh = cnh
	return nil
}

// touch marks the rider modified.
func (r *DeliveryRider) touch(now time.Time) {
	t := now.UTC()
	r.updatedAt = &t
}
