// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/pkg/guard"
)

var ErrGetMotorcyclesQueryIsNotConstructed = errors.New(
	"GetMotorcyclesQuery must be created via NewGetMotorcyclesQuery constructor",
)

// GetMotorcyclesQuery retrieves fleet units, optionally filtered by plate.
// The filter is normalized the same way plates are stored, so formatted
// variants of the same plate match.
//
// Example:
//
//	query := NewGetMotorcyclesQuery("abc-1d23")
//	handler := NewGetMotorcyclesQueryHandler(db)
//	motos, err := handler.Handle(ctx, query)
type GetMotorcyclesQuery struct {
	plateFilter string

	guard guard.ConstructorGuard
}

// NewGetMotorcyclesQuery creates a query to list motorcycles. An empty
// rawPlateFilter lists the whole fleet.
func NewGetMotorcyclesQuery(rawPlateFilter string) GetMotorcyclesQuery {
	return GetMotorcyclesQuery{
		plateFilter: motorcycle.NormalizePlate(rawPlateFilter),
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMotorcyclesQuery) Validate() error {
	return q.guard.Validate(ErrGetMotorcyclesQueryIsNotConstructed)
}

// PlateFilter returns the normalized plate filter, empty for no filtering.
func (q GetMotorcyclesQuery) PlateFilter() string {
	return q.plateFilter
}

// MotorcycleResponse represents a fleet unit in the read model.
type MotorcycleResponse struct {
	ID        string
	Year      int
	Model     string
	Plate     string
	CreatedAt time.Time
}
