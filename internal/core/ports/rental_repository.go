package ports

import (
	"context"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
)

// RentalRepository defines the persistence contract for rental contracts.
// Sequence ids are assigned by storage at insert time and written back into
// the aggregate.
type RentalRepository interface {
	// Add persists a new rental, letting storage assign the sequence id, and
	// records that id on the aggregate via AssignID.
	Add(ctx context.Context, rt *rental.Rental) error

	// Update persists changes to an existing rental under optimistic
	// concurrency. Returns a version error when the rental was modified
	// concurrently, which callers surface as a conflict.
	Update(ctx context.Context, rt *rental.Rental) error

	// Get retrieves a rental by its sequence id.
	Get(ctx context.Context, id int) (*rental.Rental, error)

	// GetOpenByRider retrieves the rider's single open rental.
	// Returns a not-found error when the rider has no open rental.
	GetOpenByRider(ctx context.Context, riderID kernel.ID) (*rental.Rental, error)

	// HasOpenByRider reports whether the rider currently has an open rental.
	HasOpenByRider(ctx context.Context, riderID kernel.ID) (bool, error)
}
