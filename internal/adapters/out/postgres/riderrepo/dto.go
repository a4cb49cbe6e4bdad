// Package riderrepo provides data transfer objects and mapping functions for
// delivery rider persistence. The cnpj and cnh_number columns carry the
// unique constraints backing the rider uniqueness invariants.
package riderrepo

import (
	"time"

	"rentmoto/internal/adapters/out/postgres/rentalrepo"
	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/core/domain/model/rider"
)

// RiderDTO represents the database structure for persisting rider
// aggregates. The cnpj column stores the normalized digits-only form. The
// rider's rentals live in their own table and are preloaded on Get so the
// aggregate can check its single-open-rental invariant.
type RiderDTO struct {
	ID          string                 `gorm:"type:varchar(255);primaryKey"`
	Name        string                 `gorm:"type:varchar(255);not null"`
	CNPJ        string                 `gorm:"column:cnpj;type:varchar(14);not null;uniqueIndex"`
	BirthDate   time.Time              `gorm:"not null"`
	CNHType     string                 `gorm:"column:cnh_type;type:varchar(3);not null"`
	CNHNumber   string                 `gorm:"column:cnh_number;type:varchar(255);not null;uniqueIndex"`
	CNHPhotoRef string                 `gorm:"column:cnh_photo_reference;type:varchar(512)"`
	Active      bool                   `gorm:"not null"`
	CreatedAt   time.Time              `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   *time.Time             `gorm:"autoUpdateTime:false"`
	Rentals     []rentalrepo.RentalDTO `gorm:"foreignKey:RiderID"`
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider aggregate to its database representation.
// Rentals are persisted through their own repository, never through the
// rider row.
func fromDomain(r *rider.DeliveryRider) RiderDTO {
	return RiderDTO{
		ID:          r.ID().String(),
		Name:        r.Name(),
		CNPJ:        r.CNPJ(),
		BirthDate:   r.BirthDate(),
		CNHType:     r.CNH().Type().String(),
		CNHNumber:   r.CNH().Number(),
		CNHPhotoRef: r.CNH().PhotoReference(),
		Active:      r.IsActive(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

// toDomain converts a database row to a rider aggregate, rebuilding the
// license value and the rental collection.
func toDomain(dto RiderDTO) (*rider.DeliveryRider, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	cnhType, err := rider.ParseCNHType(dto.CNHType)
	if err != nil {
		return nil, err
	}

	cnh, err := rider.NewCNH(cnhType, dto.CNHNumber, dto.CNHPhotoRef)
	if err != nil {
		return nil, err
	}

	rentals := make([]*rental.Rental, 0, len(dto.Rentals))
	for _, rentalDto := range dto.Rentals {
		rt, rtErr := rentalrepo.ToDomain(rentalDto)
		if rtErr != nil {
			return nil, rtErr
		}
		rentals = append(rentals, rt)
	}

	return rider.RestoreRider(id, dto.CNPJ, dto.Name, dto.BirthDate, cnh,
		rentals, dto.Active, dto.CreatedAt, dto.UpdatedAt)
}
