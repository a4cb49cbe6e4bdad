package kernel

import (
	"strings"

	"rentmoto/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
// IDs must be created via NewID to guarantee they carry a non-blank value.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object for caller-supplied entity identifiers (motorcycles,
// delivery riders). The platform does not generate these ids; the API consumer
// chooses them, so the only structural guarantees are trimming and
// non-blankness. Uniqueness is enforced by the persistence layer.
//
// The zero value of ID is invalid and fails Validate.
//
// Example:
//
//	id, err := kernel.NewID("moto123")
//	if err != nil {
//	    // blank identifier
//	}
type ID struct {
	value string
}

// NewID creates an ID from a raw string, trimming surrounding whitespace.
// Returns an error if the trimmed value is blank.
func NewID(raw string) (ID, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: value}, nil
}

// String returns the identifier value.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two IDs by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value, nil otherwise.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
