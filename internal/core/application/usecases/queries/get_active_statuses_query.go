package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetActiveStatusesQueryIsNotConstructed = errors.New(
		"GetActiveStatusesQuery must be created via NewGetActiveStatusesQuery constructor",
	)
	ErrDistributorIsRequired = errors.New("distributor is required")
)

// GetActiveStatusesQuery retrieves the active status entries a distributor's
// parcels may transition to. Deactivated entries are never returned.
//
// Example:
//
//	query, err := NewGetActiveStatusesQuery("Exelot")
//	if err != nil {
//	    return err
//	}
//	statuses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get statuses: %w", err)
//	}
type GetActiveStatusesQuery struct { //nolint:recvcheck //using for validation
	distributor string

	guard guard.ConstructorGuard
}

// NewGetActiveStatusesQuery creates a query to retrieve a distributor's active statuses.
// Validates that the distributor is not empty.
func NewGetActiveStatusesQuery(distributor string) (GetActiveStatusesQuery, error) {
	query := GetActiveStatusesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDistributor(distributor); err != nil {
		return GetActiveStatusesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveStatusesQueryIsNotConstructed if validation fails.
func (q GetActiveStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveStatusesQueryIsNotConstructed)
}

// Distributor returns the distributor name from the query.
func (q GetActiveStatusesQuery) Distributor() string {
	return q.distributor
}

func (q *GetActiveStatusesQuery) setDistributor(distributor string) error {
	if distributor == "" {
		return ErrDistributorIsRequired
	}

	q.distributor = distributor
	return nil
}

// GetActiveStatusesQueryResponse represents one resolvable status entry.
type GetActiveStatusesQueryResponse struct {
	ID                 kernel.UUID
	Name               string
	ClassificationCode string
}
