package motorcycle

import (
	"errors"
	"strings"
	"time"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

// MinYear is the oldest model year the fleet accepts.
const MinYear = 1900

// Domain errors for motorcycle operations.
var (
	// ErrModelIsRequired is returned when creating or renaming with a blank model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrMotorcycleIsNotConstructed is returned when using an improperly initialized Motorcycle.
	ErrMotorcycleIsNotConstructed = errors.New("Motorcycle must be created via NewMotorcycle constructor")
)

// Motorcycle represents a single fleet unit.
// It is an aggregate root holding identity, model year, model name, the
// normalized plate, and the rental-occupancy flag.
//
// Business rules:
//   - The id is caller-supplied and must be non-blank
//   - Year must lie within [MinYear, currentYear+1]
//   - The plate is always stored in normalized Mercosul form
//   - A motorcycle carrying any rental must not be deleted (enforced by the
//     application layer via HasRentals)
type Motorcycle struct {
	// id uniquely identifies the motorcycle within the fleet
	id kernel.ID
	// year is the model year
	year int
	// model is the human-readable model name
	model string
	// plate is the normalized Mercosul license plate
	plate Plate
	// hasRentals marks rental occupancy
	hasRentals bool
	// createdAt is the registration instant (UTC)
	createdAt time.Time
	// updatedAt is the last modification instant, nil until first change
	updatedAt *time.Time
	// guard ensures the motorcycle was properly constructed
	guard guard.ConstructorGuard
}

// NewMotorcycle creates a Motorcycle with full validation. This is the only
// way to register a fresh fleet unit.
//
// The now parameter supplies the current instant; it bounds the acceptable
// model year (MinYear..now.Year()+1) and becomes the creation timestamp.
// All validation errors are aggregated via errors.Join so a single call
// reports every offending field.
//
// A new motorcycle always starts with hasRentals=false.
func NewMotorcycle(id kernel.ID, year int, model string, plate Plate, now time.Time) (*Motorcycle, error) {
	m := &Motorcycle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setYear(year, now),
		m.setModel(model),
		m.setPlate(plate),
	); err != nil {
		return nil, err
	}

	m.createdAt = now.UTC()
	return m, nil
}

// RestoreMotorcycle reconstructs a Motorcycle from persistent storage,
// including its occupancy flag and timestamps. Unlike NewMotorcycle it does
// not re-check the model-year upper bound: that is a registration-time rule
// and the stored year was valid when the unit entered the fleet.
func RestoreMotorcycle(
	id kernel.ID,
	year int,
	model string,
	plate Plate,
	hasRentals bool,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Motorcycle, error) {
	m := &Motorcycle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setModel(model),
		m.setPlate(plate),
	); err != nil {
		return nil, err
	}
	if year < MinYear {
		return nil, errs.NewValueIsInvalidError("year")
	}

	m.year = year
	m.hasRentals = hasRentals
	m.createdAt = createdAt
	m.updatedAt = updatedAt
	return m, nil
}

// IsEqual compares two motorcycles by identity.
func (m *Motorcycle) IsEqual(other *Motorcycle) bool {
	if other == nil {
		return false
	}
	return m.id.IsEqual(other.id)
}

// Validate checks that the Motorcycle was built via its constructor.
func (m *Motorcycle) Validate() error {
	if m == nil {
		return ErrMotorcycleIsNotConstructed
	}
	return m.guard.Validate(ErrMotorcycleIsNotConstructed)
}

// ID returns the motorcycle's identifier.
func (m *Motorcycle) ID() kernel.ID {
	return m.id
}

// Year returns the model year.
func (m *Motorcycle) Year() int {
	return m.year
}

// Model returns the model name.
func (m *Motorcycle) Model() string {
	return m.model
}

// Plate returns the normalized license plate.
func (m *Motorcycle) Plate() Plate {
	return m.plate
}

// HasRentals reports whether the motorcycle is occupied by a rental.
func (m *Motorcycle) HasRentals() bool {
	return m.hasRentals
}

// CreatedAt returns the registration instant.
func (m *Motorcycle) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt returns the last modification instant, nil if never modified.
func (m *Motorcycle) UpdatedAt() *time.Time {
	return m.updatedAt
}

// Rename replaces the model name. Fails if the new name is blank.
func (m *Motorcycle) Rename(model string, now time.Time) error {
	if strings.TrimSpace(model) == "" {
		return ErrModelIsRequired
	}
	m.model = strings.TrimSpace(model)
	m.touch(now)
	return nil
}

// ChangePlate replaces the plate with an already-validated one. Changing to
// the identical plate is a no-op, not an error, and does not mark the entity
// modified. Uniqueness against the rest of the fleet is the caller's
// responsibility, checked before invoking this method.
func (m *Motorcycle) ChangePlate(newPlate Plate, now time.Time) error {
	if err := newPlate.Validate(); err != nil {
		return err
	}
	if m.plate.IsEqual(newPlate) {
		return nil
	}
	m.plate = newPlate
	m.touch(now)
	return nil
}

// MarkAsRented flags the motorcycle as occupied. Idempotent: repeating the
// call while already rented changes nothing.
func (m *Motorcycle) MarkAsRented(now time.Time) {
	if !m.hasRentals {
		m.hasRentals = true
		m.touch(now)
	}
}

// MarkAsNotRented clears the occupancy flag. Idempotent.
func (m *Motorcycle) MarkAsNotRented(now time.Time) {
	if m.hasRentals {
		m.hasRentals = false
		m.touch(now)
	}
}

// touch records a modification instant.
func (m *Motorcycle) touch(now time.Time) {
	at := now.UTC()
	m.updatedAt = &at
}

// setID sets the identifier with validation.
func (m *Motorcycle) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

// setYear validates the model year against the registration-time bounds.
func (m *Motorcycle) setYear(year int, now time.Time) error {
	maxYear := now.UTC().Year() + 1
	if year < MinYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, MinYear, maxYear)
	}
	m.year = year
	return nil
}

// setModel sets the model name with validation.
func (m *Motorcycle) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return ErrModelIsRequired
	}
	m.model = strings.TrimSpace(model)
	return nil
}

// setPlate sets the plate with validation.
func (m *Motorcycle) setPlate(plate Plate) error {
	if err := plate.Validate(); err != nil {
		return err
	}
	m.plate = plate
	return nil
}
