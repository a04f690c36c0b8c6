package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/status"
)

// StatusRepository provides persistence operations for status registry entries.
type StatusRepository interface {
	// Add saves a new registry entry.
	Add(ctx context.Context, aggregate *status.Entry) error

	// Update saves an existing registry entry.
	Update(ctx context.Context, aggregate *status.Entry) error

	// Get retrieves a registry entry by identifier.
	Get(ctx context.Context, id kernel.UUID) (*status.Entry, error)

	// ResolveActive retrieves the active entry matching (distributor, name).
	// Returns an object-not-found error when no active entry matches;
	// inactive entries are deliberately not resolvable here.
	ResolveActive(ctx context.Context, distributor, name string) (*status.Entry, error)
}
