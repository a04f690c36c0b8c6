// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain model and read projections straight from the database for
// performance.
package queries

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
)

// GetParcelsQuery retrieves tracked parcels, optionally filtered by distributor.
// An empty distributor means all parcels.
//
// Example:
//
//	query := NewGetParcelsQuery("Exelot")
//	handler := NewGetParcelsQueryHandler(db)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get parcels: %w", err)
//	}
//	fmt.Printf("Found %d parcels\n", len(parcels))
type GetParcelsQuery struct {
	distributor string

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a query to retrieve parcels.
// Pass an empty distributor to retrieve parcels for all distributors.
func NewGetParcelsQuery(distributor string) GetParcelsQuery {
	return GetParcelsQuery{
		distributor: distributor,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelsQueryIsNotConstructed if validation fails.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// Distributor returns the distributor filter, empty for no filter.
func (q GetParcelsQuery) Distributor() string {
	return q.distributor
}

// GetParcelsQueryResponse represents one tracked parcel in a listing.
type GetParcelsQueryResponse struct {
	ID                 string
	Distributor        string
	Status             string
	ClassificationCode string
	Comments           string
	Site               string
	StatusChangedAt    time.Time
}
