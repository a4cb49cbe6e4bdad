package ports

import (
	"context"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for delivery rider
// aggregates. CNPJ lookups always use the normalized digits-only form.
//
// The existence checks back the aggregate's registration-time predicates;
// storage additionally carries hard unique constraints on cnpj and cnh
// number to close the check-then-act race between concurrent registrations.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	// Returns a conflict error when the cnpj or cnh-number constraint fires.
	Add(ctx context.Context, r *rider.DeliveryRider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, r *rider.DeliveryRider) error

	// Get retrieves a rider aggregate by its unique identifier, with its
	// rental history loaded so the single-open-rental invariant can be
	// checked against persisted state.
	Get(ctx context.Context, id kernel.ID) (*rider.DeliveryRider, error)

	// ExistsWithCNPJ reports whether any rider holds the given normalized cnpj.
	ExistsWithCNPJ(ctx context.Context, normalizedCNPJ string) (bool, error)

	// ExistsWithCNHNumber reports whether any rider holds the given trimmed
	// license number.
	ExistsWithCNHNumber(ctx context.Context, cnhNumber string) (bool, error)
}
