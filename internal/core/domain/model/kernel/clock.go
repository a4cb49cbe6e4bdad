package kernel

import "time"

// Clock abstracts the current instant so that pricing and timestamping stay
// deterministic in tests. Production code uses SystemClock; tests supply a
// fixed implementation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the ambient wall clock in UTC.
type SystemClock struct{}

// NewSystemClock returns the production clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current instant in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Intended for tests and for
// replaying operations at a known point in time.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a clock pinned to the given instant.
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{instant: instant}
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.instant
}
