package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/distributor"
)

// DistributorRepository provides read access to distributor contact records.
// Distributors are administered by an external system; this service only
// resolves notification addresses.
type DistributorRepository interface {
	// GetByNames retrieves the distributors whose names appear in names.
	// Unknown names are silently absent from the result.
	GetByNames(ctx context.Context, names []string) ([]*distributor.Distributor, error)
}
