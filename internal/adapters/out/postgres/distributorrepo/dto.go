// Package distributorrepo provides read access to distributor contact records.
// The table is populated by an external administration system; this service
// only resolves notification addresses from it.
package distributorrepo

import (
	"parceltrack/internal/core/domain/model/distributor"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DistributorDTO represents the database structure for distributor contacts.
type DistributorDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"uniqueIndex"`
	Email string
}

// TableName specifies the database table name for distributors.
func (DistributorDTO) TableName() string {
	return "distributors"
}

// toDomain converts a database DTO to a distributor read model.
func toDomain(dto DistributorDTO) (*distributor.Distributor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return distributor.NewDistributor(id, dto.Name, dto.Email)
}
