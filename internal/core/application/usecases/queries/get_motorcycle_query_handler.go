package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"rentmoto/internal/pkg/errs"
)

// GetMotorcycleQueryHandler fetches a single fleet unit from the database.
type GetMotorcycleQueryHandler struct {
	db *gorm.DB
}

// NewGetMotorcycleQueryHandler creates a handler for single-unit queries.
func NewGetMotorcycleQueryHandler(db *gorm.DB) GetMotorcycleQueryHandler {
	return GetMotorcycleQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when no unit carries
// the given identifier.
func (h GetMotorcycleQueryHandler) Handle(
	ctx context.Context,
	query GetMotorcycleQuery,
) (MotorcycleResponse, error) {
	if err := query.Validate(); err != nil {
		return MotorcycleResponse{}, err
	}

	var moto MotorcycleResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			year,
			model,
			plate,
			created_at
		FROM motorcycles
		WHERE id = ?
	`, query.MotorcycleID().String()).Row()

	err := row.Scan(
		&moto.ID,
		&moto.Year,
		&moto.Model,
		&moto.Plate,
		&moto.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return MotorcycleResponse{}, errs.NewObjectNotFoundError(
			"motorcycleID", query.MotorcycleID().String())
	}
	if err != nil {
		return MotorcycleResponse{}, err
	}

	return moto, nil
}
