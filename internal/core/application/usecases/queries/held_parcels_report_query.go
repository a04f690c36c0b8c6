package queries

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrHeldParcelsReportQueryIsNotConstructed = errors.New(
		"HeldParcelsReportQuery must be created via NewHeldParcelsReportQuery constructor",
	)
	ErrHeldCodesAreRequired = errors.New("at least one classification code is required")
)

// HeldParcelsReportQuery counts parcels whose classification code marks them
// as held at a facility, grouped by distributor and site. Optional date range
// and distributor/site filters narrow the result.
//
// Example:
//
//	query, err := NewHeldParcelsReportQuery([]string{"52", "73"}, from, to, nil, nil)
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build held report: %w", err)
//	}
type HeldParcelsReportQuery struct { //nolint:recvcheck //using for validation
	codes        []string
	from         time.Time
	to           time.Time
	distributors []string
	sites        []string

	guard guard.ConstructorGuard
}

// NewHeldParcelsReportQuery creates a held parcels report query.
// Validates that at least one classification code is given.
func NewHeldParcelsReportQuery(
	codes []string, from, to time.Time, distributors, sites []string,
) (HeldParcelsReportQuery, error) {
	query := HeldParcelsReportQuery{
		from:         from,
		to:           to,
		distributors: distributors,
		sites:        sites,
		guard:        guard.NewConstructorGuard(),
	}

	if err := query.setCodes(codes); err != nil {
		return HeldParcelsReportQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrHeldParcelsReportQueryIsNotConstructed if validation fails.
func (q HeldParcelsReportQuery) Validate() error {
	return q.guard.Validate(ErrHeldParcelsReportQueryIsNotConstructed)
}

// Codes returns the held classification codes from the query.
func (q HeldParcelsReportQuery) Codes() []string {
	return q.codes
}

// From returns the lower bound of the date range, zero for unbounded.
func (q HeldParcelsReportQuery) From() time.Time {
	return q.from
}

// To returns the upper bound of the date range, zero for unbounded.
func (q HeldParcelsReportQuery) To() time.Time {
	return q.to
}

// Distributors returns the distributor filter, empty for no filter.
func (q HeldParcelsReportQuery) Distributors() []string {
	return q.distributors
}

// Sites returns the site filter, empty for no filter.
func (q HeldParcelsReportQuery) Sites() []string {
	return q.sites
}

func (q *HeldParcelsReportQuery) setCodes(codes []string) error {
	if len(codes) == 0 {
		return ErrHeldCodesAreRequired
	}

	q.codes = codes
	return nil
}

// HeldParcelsReportQueryResponse represents one held report row.
type HeldParcelsReportQueryResponse struct {
	Distributor string
	Site        string
	Count       int64
}
