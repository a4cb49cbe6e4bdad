package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMotorcyclesQueryHandler lists fleet units from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetMotorcyclesQueryHandler struct {
	db *gorm.DB
}

// NewGetMotorcyclesQueryHandler creates a handler for fleet listing queries.
func NewGetMotorcyclesQueryHandler(db *gorm.DB) GetMotorcyclesQueryHandler {
	return GetMotorcyclesQueryHandler{db: db}
}

// Handle executes the query. Returns units sorted by plate; with a plate
// filter the result carries at most one unit since plates are unique.
func (h GetMotorcyclesQueryHandler) Handle(
	ctx context.Context,
	query GetMotorcyclesQuery,
) ([]MotorcycleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	motos := make([]MotorcycleResponse, 0)

	sql := `
		SELECT
			id,
			year,
			model,
			plate,
			created_at
		FROM motorcycles
	`
	args := make([]any, 0, 1)
	if query.PlateFilter() != "" {
		sql += ` WHERE plate = ?`
		args = append(args, query.PlateFilter())
	}
	sql += ` ORDER BY plate`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var moto MotorcycleResponse

		err = rows.Scan(
			&moto.ID,
			&moto.Year,
			&moto.Model,
			&moto.Plate,
			&moto.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		motos = append(motos, moto)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return motos, nil
}
