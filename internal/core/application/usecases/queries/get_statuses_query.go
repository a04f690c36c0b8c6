package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetStatusesQueryIsNotConstructed = errors.New(
	"GetStatusesQuery must be created via NewGetStatusesQuery constructor",
)

// GetStatusesQuery retrieves the full status registry across distributors,
// including deactivated entries. Intended for registry administration.
//
// Example:
//
//	query := NewGetStatusesQuery()
//	statuses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get registry: %w", err)
//	}
type GetStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusesQuery creates a query to retrieve the whole registry.
func NewGetStatusesQuery() GetStatusesQuery {
	return GetStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusesQueryIsNotConstructed if validation fails.
func (q GetStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusesQueryIsNotConstructed)
}

// GetStatusesQueryResponse represents one registry entry, active or not.
type GetStatusesQueryResponse struct {
	ID                 kernel.UUID
	Distributor        string
	Name               string
	ClassificationCode string
	Active             bool
}
