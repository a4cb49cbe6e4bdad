package motorcycle

import (
	"fmt"
	"regexp"
	"strings"

	"rentmoto/internal/pkg/errs"
)

// plateLength is the number of characters of a normalized Mercosul plate.
const plateLength = 7

// mercosulPattern matches a normalized plate: 3 letters, 1 digit,
// 1 letter-or-digit, 2 digits.
var mercosulPattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

// ErrPlateIsNotConstructed is returned when validating a zero-value Plate.
var ErrPlateIsNotConstructed = errs.NewValueIsRequiredError("plate must be created via NewPlate")

// Plate is an immutable value object holding a normalized Mercosul license
// plate. All comparisons and storage lookups use the normalized form, so two
// plates that differ only in casing or separators are the same plate.
//
// Example:
//
//	plate, err := motorcycle.NewPlate("abc-1d23")
//	if err != nil {
//	    // malformed plate
//	}
//	plate.String() // "ABC1D23"
type Plate struct {
	value string
}

// NormalizePlate uppercases the raw value and strips every character that is
// not a letter or a digit. It is pure and idempotent; both creation and
// lookups rely on it so that storage-level uniqueness checks always see the
// same form.
func NormalizePlate(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewPlate normalizes the raw value and validates it against the Mercosul
// pattern. Returns an error if the normalized plate is blank, has a length
// other than 7, or does not match the pattern.
func NewPlate(raw string) (Plate, error) {
	normalized := NormalizePlate(raw)
	if normalized == "" {
		return Plate{}, errs.NewValueIsRequiredError("plate")
	}
	if len(normalized) != plateLength {
		return Plate{}, errs.NewValueIsInvalidErrorWithCause("plate",
			fmt.Errorf("%q must have %d characters after normalization", normalized, plateLength))
	}
	if !mercosulPattern.MatchString(normalized) {
		return Plate{}, errs.NewValueIsInvalidErrorWithCause("plate",
			fmt.Errorf("%q does not match the Mercosul pattern", normalized))
	}
	return Plate{value: normalized}, nil
}

// String returns the normalized plate value.
func (p Plate) String() string {
	return p.value
}

// IsEqual compares two plates by their normalized value.
func (p Plate) IsEqual(other Plate) bool {
	return p.value == other.value
}

// Validate returns ErrPlateIsNotConstructed for the zero value, nil otherwise.
func (p Plate) Validate() error {
	if p.value == "" {
		return ErrPlateIsNotConstructed
	}
	return nil
}
