// Package motorepo provides data transfer objects and mapping functions for
// motorcycle persistence. It implements the repository pattern for the
// motorcycle aggregate, handling conversion between domain entities and
// database rows.
package motorepo

import (
	"time"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/motorcycle"
)

// MotorcycleDTO represents the database structure for persisting motorcycle
// aggregates. The plate column stores the normalized form and carries the
// unique constraint backing the plate invariant.
type MotorcycleDTO struct {
	ID         string     `gorm:"type:varchar(255);primaryKey"`
	Year       int        `gorm:"type:int;not null"`
	Model      string     `gorm:"type:varchar(255);not null"`
	Plate      string     `gorm:"type:varchar(7);not null;uniqueIndex"`
	HasRentals bool       `gorm:"not null"`
	CreatedAt  time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for motorcycle entities.
func (MotorcycleDTO) TableName() string {
	return "motorcycles"
}

// fromDomain converts a motorcycle aggregate to its database representation.
func fromDomain(moto *motorcycle.Motorcycle) MotorcycleDTO {
	return MotorcycleDTO{
		ID:         moto.ID().String(),
		Year:       moto.Year(),
		Model:      moto.Model(),
		Plate:      moto.Plate().String(),
		HasRentals: moto.HasRentals(),
		CreatedAt:  moto.CreatedAt(),
		UpdatedAt:  moto.UpdatedAt(),
	}
}

// toDomain converts a database row to a motorcycle aggregate.
func toDomain(dto MotorcycleDTO) (*motorcycle.Motorcycle, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	plate, err := motorcycle.NewPlate(dto.Plate)
	if err != nil {
		return nil, err
	}

	return motorcycle.RestoreMotorcycle(id, dto.Year, dto.Model, plate,
		dto.HasRentals, dto.CreatedAt, dto.UpdatedAt)
}
