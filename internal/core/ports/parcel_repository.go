// Package ports defines the interfaces the core depends on for persistence.
// Adapters implement them; command handlers consume them through unit-of-work
// boundaries so that each business operation is transactional.
package ports

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository provides persistence operations for the Parcel aggregate.
// Parcels are keyed by their externally assigned tracking identifier.
type ParcelRepository interface {
	// Add saves a new parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update saves an existing parcel. Returns an object-not-found error
	// when no stored parcel matched, so callers can tell a lost update from
	// success before writing dependent records.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by tracking identifier.
	Get(ctx context.Context, id string) (*parcel.Parcel, error)

	// GetStaleBefore retrieves parcels whose last transition happened
	// before cutoff. Used by the overdue notification job.
	GetStaleBefore(ctx context.Context, cutoff time.Time) ([]*parcel.Parcel, error)
}
