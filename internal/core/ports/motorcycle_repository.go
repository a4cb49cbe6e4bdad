// Package ports defines the contracts between the core layer and
// infrastructure: repositories, transaction control, event publishing, and
// file storage. Adapters implement them; use cases depend on them, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/motorcycle"
)

// MotorcycleRepository defines the persistence contract for motorcycle
// aggregates. Plate lookups always use the normalized form, so the
// storage-level unique constraint and these queries agree.
type MotorcycleRepository interface {
	// Add persists a new motorcycle aggregate to storage.
	// Returns a conflict error when the plate unique constraint fires.
	Add(ctx context.Context, moto *motorcycle.Motorcycle) error

	// Update persists changes to an existing motorcycle aggregate.
	// Returns a conflict error when a plate change collides with another unit.
	Update(ctx context.Context, moto *motorcycle.Motorcycle) error

	// Get retrieves a motorcycle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*motorcycle.Motorcycle, error)

	// GetByPlate retrieves the motorcycle carrying the given normalized plate.
	GetByPlate(ctx context.Context, normalizedPlate string) (*motorcycle.Motorcycle, error)

	// ExistsWithPlate reports whether any motorcycle other than excludeID
	// carries the given normalized plate. Pass a zero excludeID to consider
	// the whole fleet; pass the unit's own id when re-checking before a
	// plate change.
	ExistsWithPlate(ctx context.Context, normalizedPlate string, excludeID kernel.ID) (bool, error)

	// Delete removes a motorcycle aggregate from storage.
	// The caller is responsible for checking the occupancy invariant first.
	Delete(ctx context.Context, id kernel.ID) error
}
