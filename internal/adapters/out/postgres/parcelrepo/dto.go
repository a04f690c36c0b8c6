// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Indexed by distributor and last status change for overdue scans and
// per-distributor listings.
type ParcelDTO struct {
	ID                 string `gorm:"primaryKey"`
	Distributor        string `gorm:"index"`
	Status             string
	ClassificationCode string `gorm:"index"`
	Comments           string
	Site               string
	StatusChangedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:                 p.ID(),
		Distributor:        p.Distributor(),
		Status:             p.Status(),
		ClassificationCode: p.ClassificationCode(),
		Comments:           p.Comments(),
		Site:               p.Site(),
		StatusChangedAt:    p.StatusChangedAt(),
	}
}

// toDomain converts a database DTO to a parcel aggregate.
// Reconstructs the complete aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	return parcel.RestoreParcel(
		dto.ID,
		dto.Distributor,
		dto.Status,
		dto.ClassificationCode,
		dto.Comments,
		dto.Site,
		dto.StatusChangedAt,
	)
}
