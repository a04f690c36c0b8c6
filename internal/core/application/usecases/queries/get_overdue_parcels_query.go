package queries

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetOverdueParcelsQueryIsNotConstructed = errors.New(
		"GetOverdueParcelsQuery must be created via NewGetOverdueParcelsQuery constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// Classification codes for terminal handling states. Parcels in these states
// are not actionable and are excluded from overdue listings.
var excludedOverdueCodes = []string{"73", "52", "99"}

// GetOverdueParcelsQuery retrieves parcels whose status has not changed
// within the given threshold, excluding parcels already in terminal handling
// states.
//
// Example:
//
//	query, err := NewGetOverdueParcelsQuery(48 * time.Hour)
//	if err != nil {
//	    return err
//	}
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get overdue parcels: %w", err)
//	}
type GetOverdueParcelsQuery struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetOverdueParcelsQuery creates a query to retrieve overdue parcels.
// Validates that the staleness threshold is positive.
func NewGetOverdueParcelsQuery(threshold time.Duration) (GetOverdueParcelsQuery, error) {
	query := GetOverdueParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setThreshold(threshold); err != nil {
		return GetOverdueParcelsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueParcelsQueryIsNotConstructed if validation fails.
func (q GetOverdueParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueParcelsQueryIsNotConstructed)
}

// Threshold returns the staleness threshold from the query.
func (q GetOverdueParcelsQuery) Threshold() time.Duration {
	return q.threshold
}

func (q *GetOverdueParcelsQuery) setThreshold(threshold time.Duration) error {
	if threshold <= 0 {
		return ErrThresholdIsInvalid
	}

	q.threshold = threshold
	return nil
}

// GetOverdueParcelsQueryResponse represents one overdue parcel.
type GetOverdueParcelsQueryResponse struct {
	ID                 string
	Distributor        string
	Status             string
	ClassificationCode string
	Site               string
	StatusChangedAt    time.Time
}
