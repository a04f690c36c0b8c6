// Package auditrepo provides data transfer objects and mapping functions for
// the append-only audit ledger.
package auditrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditEntryDTO represents the database structure for persisting audit entries.
// Indexed by parcel so a parcel's trail can be read without a full scan.
type AuditEntryDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID              string    `gorm:"index"`
	OldStatus             string
	NewStatus             string
	OldClassificationCode string
	NewClassificationCode string
	ChangedAt             time.Time
}

// TableName specifies the database table name for audit entries.
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(e *audit.Entry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:                    e.ID().Bytes(),
		ParcelID:              e.ParcelID(),
		OldStatus:             e.OldStatus(),
		NewStatus:             e.NewStatus(),
		OldClassificationCode: e.OldClassificationCode(),
		NewClassificationCode: e.NewClassificationCode(),
		ChangedAt:             e.ChangedAt(),
	}
}

// toDomain converts a database DTO to an audit entry.
func toDomain(dto AuditEntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(
		id,
		dto.ParcelID,
		dto.OldStatus,
		dto.NewStatus,
		dto.OldClassificationCode,
		dto.NewClassificationCode,
		dto.ChangedAt,
	)
}
