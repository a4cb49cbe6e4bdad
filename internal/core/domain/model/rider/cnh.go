package rider

import (
	"errors"
	"fmt"
	"strings"

	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

// ErrCNHIsNotConstructed is returned when using a CNH that was not created
// via NewCNH.
var ErrCNHIsNotConstructed = errors.New("CNH must be created via NewCNH constructor")

// CNHType classifies a driving license. Only CNHTypeA and CNHTypeAB qualify
// the holder to operate a motorcycle.
type CNHType int

const (
	// CNHTypeUnknown represents an invalid or undefined license type.
	// This value (0) helps catch uninitialized CNHType values.
	CNHTypeUnknown CNHType = iota

	// CNHTypeA licenses motorcycles.
	CNHTypeA

	// CNHTypeB licenses cars only.
	CNHTypeB

	// CNHTypeAB licenses both motorcycles and cars.
	CNHTypeAB
)

// ParseCNHType converts the wire representation ("A", "B", "A+B") into a
// CNHType. Surrounding whitespace is ignored.
func ParseCNHType(raw string) (CNHType, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "A":
		return CNHTypeA, nil
	case "B":
		return CNHTypeB, nil
	case "A+B":
		return CNHTypeAB, nil
	default:
		return CNHTypeUnknown, errs.NewValueIsInvalidErrorWithCause("cnhType",
			fmt.Errorf("%q is not one of A, B, A+B", raw))
	}
}

// Validate checks that the CNHType is one of the known license types.
func (t CNHType) Validate() error {
	switch t {
	case CNHTypeA, CNHTypeB, CNHTypeAB:
		return nil
	default:
		return errs.NewValueIsInvalidError("cnhType")
	}
}

// IsMotorcycleEligible reports whether the license type permits operating a
// motorcycle.
func (t CNHType) IsMotorcycleEligible() bool {
	return t == CNHTypeA || t == CNHTypeAB
}

// String returns the wire representation of the license type.
func (t CNHType) String() string {
	switch t {
	case CNHTypeA:
		return "A"
	case CNHTypeB:
		return "B"
	case CNHTypeAB:
		return "A+B"
	default:
		return "Unknown"
	}
}

// CNH is the immutable driving license credential of a rider: type, number,
// and an optional photo reference. Replacing any part of it means building a
// new value.
type CNH struct {
	cnhType        CNHType
	number         string
	photoReference string
	guard          guard.ConstructorGuard
}

// NewCNH creates a license credential. The number must be non-blank; number
// and photo reference are trimmed. The photo reference is an opaque storage
// key and may be empty.
func NewCNH(cnhType CNHType, number string, photoReference string) (CNH, error) {
	if err := cnhType.Validate(); err != nil {
		return CNH{}, err
	}

	number = strings.TrimSpace(number)
	if number == "" {
		return CNH{}, errs.NewValueIsRequiredError("cnhNumber")
	}

	return CNH{
		cnhType:        cnhType,
		number:         number,
		photoReference: strings.TrimSpace(photoReference),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// WithPhoto builds a new CNH preserving type and number but carrying the
// given photo reference. The reference must be non-blank and end in ".png"
// or ".bmp".
func (c CNH) WithPhoto(reference string) (CNH, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return CNH{}, errs.NewValueIsRequiredError("cnhPhotoReference")
	}
	lower := strings.ToLower(reference)
	if !strings.HasSuffix(lower, ".png") && !strings.HasSuffix(lower, ".bmp") {
		return CNH{}, errs.NewValueIsInvalidErrorWithCause("cnhPhotoReference",
			fmt.Errorf("%q must end in .png or .bmp", reference))
	}
	return NewCNH(c.cnhType, c.number, reference)
}

// Validate checks that the CNH was built via its constructor.
func (c CNH) Validate() error {
	return c.guard.Validate(ErrCNHIsNotConstructed)
}

// Type returns the license type.
func (c CNH) Type() CNHType {
	return c.cnhType
}

// Number returns the trimmed license number.
func (c CNH) Number() string {
	return c.number
}

// PhotoReference returns the photo storage key, empty if none was assigned.
func (c CNH) PhotoReference() string {
	return c.photoReference
}

// IsEqual compares two licenses by type, number, and photo reference.
func (c CNH) IsEqual(other CNH) bool {
	return c.cnhType == other.cnhType &&
		c.number == other.number &&
		c.photoReference == other.photoReference
}
