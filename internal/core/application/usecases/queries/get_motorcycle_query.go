package queries

import (
	"errors"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/pkg/guard"
)

var ErrGetMotorcycleQueryIsNotConstructed = errors.New(
	"GetMotorcycleQuery must be created via NewGetMotorcycleQuery constructor",
)

// GetMotorcycleQuery retrieves a single fleet unit by identifier.
type GetMotorcycleQuery struct {
	motorcycleID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetMotorcycleQuery creates a query to fetch one motorcycle.
func NewGetMotorcycleQuery(motorcycleID kernel.ID) (GetMotorcycleQuery, error) {
	if err := motorcycleID.Validate(); err != nil {
		return GetMotorcycleQuery{}, err
	}

	return GetMotorcycleQuery{
		motorcycleID: motorcycleID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMotorcycleQuery) Validate() error {
	return q.guard.Validate(ErrGetMotorcycleQueryIsNotConstructed)
}

// MotorcycleID returns the unit's identifier.
func (q GetMotorcycleQuery) MotorcycleID() kernel.ID {
	return q.motorcycleID
}
