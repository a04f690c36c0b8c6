package queries

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var ErrStatusSummaryReportQueryIsNotConstructed = errors.New(
	"StatusSummaryReportQuery must be created via NewStatusSummaryReportQuery constructor",
)

// StatusSummaryReportQuery counts parcels grouped by status, distributor and
// classification code description. Optional date range bounds the last status
// change; an empty distributor list means all distributors.
//
// Example:
//
//	query := NewStatusSummaryReportQuery(from, to, []string{"Exelot"})
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build summary: %w", err)
//	}
//	for _, row := range summary {
//	    fmt.Printf("%s / %s: %d\n", row.Distributor, row.Status, row.Count)
//	}
type StatusSummaryReportQuery struct {
	from         time.Time
	to           time.Time
	distributors []string

	guard guard.ConstructorGuard
}

// NewStatusSummaryReportQuery creates a status summary report query.
// Zero from/to values leave that side of the date range unbounded.
func NewStatusSummaryReportQuery(from, to time.Time, distributors []string) StatusSummaryReportQuery {
	return StatusSummaryReportQuery{
		from:         from,
		to:           to,
		distributors: distributors,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrStatusSummaryReportQueryIsNotConstructed if validation fails.
func (q StatusSummaryReportQuery) Validate() error {
	return q.guard.Validate(ErrStatusSummaryReportQueryIsNotConstructed)
}

// From returns the lower bound of the date range, zero for unbounded.
func (q StatusSummaryReportQuery) From() time.Time {
	return q.from
}

// To returns the upper bound of the date range, zero for unbounded.
func (q StatusSummaryReportQuery) To() time.Time {
	return q.to
}

// Distributors returns the distributor filter, empty for no filter.
func (q StatusSummaryReportQuery) Distributors() []string {
	return q.distributors
}

// StatusSummaryReportQueryResponse represents one summary row.
type StatusSummaryReportQueryResponse struct {
	Status          string
	Distributor     string
	CodeDescription string
	Count           int64
}
