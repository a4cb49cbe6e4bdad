package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListOverdueRentalsQueryHandler finds overdue open rentals in the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOverdueRentalsQueryHandler struct {
	db *gorm.DB
}

// NewListOverdueRentalsQueryHandler creates a handler for overdue rental queries.
func NewListOverdueRentalsQueryHandler(db *gorm.DB) ListOverdueRentalsQueryHandler {
	return ListOverdueRentalsQueryHandler{db: db}
}

// Handle executes the query. Returns open rentals whose expected end date
// precedes the query's reference instant, oldest first.
func (h ListOverdueRentalsQueryHandler) Handle(
	ctx context.Context,
	query ListOverdueRentalsQuery,
) ([]OverdueRentalResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]OverdueRentalResponse, 0)

	sql := `
		SELECT
			id,
			rider_id,
			motorcycle_id,
			expected_end_date
		FROM rentals
		WHERE active = true AND expected_end_date < ?
		ORDER BY expected_end_date
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var resp OverdueRentalResponse

		err = rows.Scan(
			&id,
			&resp.RiderID,
			&resp.MotorcycleID,
			&resp.ExpectedEndDate,
		)
		if err != nil {
			return nil, err
		}

		resp.Identifier = fmt.Sprintf("%s%d", rentalIdentifierPrefix, id)
		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
