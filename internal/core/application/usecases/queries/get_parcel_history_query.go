package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
		"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
	)
	ErrParcelIDIsRequired = errors.New("parcel ID is required")
)

// GetParcelHistoryQuery retrieves the audit trail of a single parcel:
// every recorded status transition in chronological order.
//
// Example:
//
//	query, err := NewGetParcelHistoryQuery("PT-1042")
//	if err != nil {
//	    return err
//	}
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get history: %w", err)
//	}
//	for _, change := range history {
//	    fmt.Printf("%s: %s -> %s\n", change.ChangedAt, change.OldStatus, change.NewStatus)
//	}
type GetParcelHistoryQuery struct { //nolint:recvcheck //using for validation
	parcelID string

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a query to retrieve a parcel's audit trail.
// Validates that the parcel ID is not empty.
func NewGetParcelHistoryQuery(parcelID string) (GetParcelHistoryQuery, error) {
	query := GetParcelHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setParcelID(parcelID); err != nil {
		return GetParcelHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelHistoryQueryIsNotConstructed if validation fails.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// ParcelID returns the parcel identifier from the query.
func (q GetParcelHistoryQuery) ParcelID() string {
	return q.parcelID
}

func (q *GetParcelHistoryQuery) setParcelID(parcelID string) error {
	if parcelID == "" {
		return ErrParcelIDIsRequired
	}

	q.parcelID = parcelID
	return nil
}

// GetParcelHistoryQueryResponse represents one recorded status transition.
type GetParcelHistoryQueryResponse struct {
	ID                    kernel.UUID
	OldStatus             string
	NewStatus             string
	OldClassificationCode string
	NewClassificationCode string
	ChangedAt             time.Time
}
