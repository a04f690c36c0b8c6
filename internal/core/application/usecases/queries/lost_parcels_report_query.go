package queries

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrLostParcelsReportQueryIsNotConstructed = errors.New(
		"LostParcelsReportQuery must be created via NewLostParcelsReportQuery constructor",
	)
	ErrLostStatusIsRequired = errors.New("lost status is required")
)

// LostParcelsReportQuery counts parcels currently in a lost status, grouped
// by distributor and site. Optional date range and distributor/site filters
// narrow the result; empty filter slices mean no filter.
//
// Example:
//
//	query, err := NewLostParcelsReportQuery("Lost", from, to, nil, nil)
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build lost report: %w", err)
//	}
type LostParcelsReportQuery struct { //nolint:recvcheck //using for validation
	status       string
	from         time.Time
	to           time.Time
	distributors []string
	sites        []string

	guard guard.ConstructorGuard
}

// NewLostParcelsReportQuery creates a lost parcels report query.
// Validates that the lost status name is not empty.
func NewLostParcelsReportQuery(
	status string, from, to time.Time, distributors, sites []string,
) (LostParcelsReportQuery, error) {
	query := LostParcelsReportQuery{
		from:         from,
		to:           to,
		distributors: distributors,
		sites:        sites,
		guard:        guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return LostParcelsReportQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrLostParcelsReportQueryIsNotConstructed if validation fails.
func (q LostParcelsReportQuery) Validate() error {
	return q.guard.Validate(ErrLostParcelsReportQueryIsNotConstructed)
}

// Status returns the lost status name from the query.
func (q LostParcelsReportQuery) Status() string {
	return q.status
}

// From returns the lower bound of the date range, zero for unbounded.
func (q LostParcelsReportQuery) From() time.Time {
	return q.from
}

// To returns the upper bound of the date range, zero for unbounded.
func (q LostParcelsReportQuery) To() time.Time {
	return q.to
}

// Distributors returns the distributor filter, empty for no filter.
func (q LostParcelsReportQuery) Distributors() []string {
	return q.distributors
}

// Sites returns the site filter, empty for no filter.
func (q LostParcelsReportQuery) Sites() []string {
	return q.sites
}

func (q *LostParcelsReportQuery) setStatus(status string) error {
	if status == "" {
		return ErrLostStatusIsRequired
	}

	q.status = status
	return nil
}

// LostParcelsReportQueryResponse represents one lost report row.
type LostParcelsReportQueryResponse struct {
	Distributor string
	Site        string
	Count       int64
}
