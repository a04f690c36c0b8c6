// Package statusrepo provides data transfer objects and mapping functions for
// status registry persistence.
package statusrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// StatusDTO represents the database structure for persisting registry entries.
// The composite unique index enforces one entry per (distributor, name) pair;
// CreatedAt preserves registration order for stable listings.
type StatusDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Distributor        string    `gorm:"uniqueIndex:idx_statuses_distributor_name"`
	Name               string    `gorm:"uniqueIndex:idx_statuses_distributor_name"`
	ClassificationCode string
	Active             bool
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for registry entries.
// Overrides GORM's default naming convention to use "statuses".
func (StatusDTO) TableName() string {
	return "statuses"
}

// fromDomain converts a registry entry to its database representation.
func fromDomain(e *status.Entry) StatusDTO {
	return StatusDTO{
		ID:                 e.ID().Bytes(),
		Distributor:        e.Distributor(),
		Name:               e.Name(),
		ClassificationCode: e.ClassificationCode(),
		Active:             e.IsActive(),
	}
}

// toDomain converts a database DTO to a registry entry.
// Reconstructs the complete entity including its active flag using RestoreEntry.
func toDomain(dto StatusDTO) (*status.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return status.RestoreEntry(id, dto.Distributor, dto.Name, dto.ClassificationCode, dto.Active)
}
