package queries

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var ErrPickupDropoffReportQueryIsNotConstructed = errors.New(
	"PickupDropoffReportQuery must be created via NewPickupDropoffReportQuery constructor",
)

// Parcels held at pickup/dropoff points are escalated once they have sat
// unchanged for a week.
const pickupDropoffStaleAfter = 168 * time.Hour

// PickupDropoffReportQuery counts parcels held at pickup/dropoff points whose
// status has not changed for more than a week, grouped by distributor and
// site. Optional date range bounds the last status change; empty filter
// slices mean no filter.
//
// Example:
//
//	query, err := NewPickupDropoffReportQuery([]string{"52", "73"}, from, to, nil, nil)
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build pickup/dropoff report: %w", err)
//	}
type PickupDropoffReportQuery struct { //nolint:recvcheck //using for validation
	codes        []string
	from         time.Time
	to           time.Time
	distributors []string
	sites        []string

	guard guard.ConstructorGuard
}

// NewPickupDropoffReportQuery creates a pickup/dropoff escalation report query.
// Validates that at least one classification code is given. Zero from/to
// values leave that side of the date range unbounded.
func NewPickupDropoffReportQuery(
	codes []string, from, to time.Time, distributors, sites []string,
) (PickupDropoffReportQuery, error) {
	query := PickupDropoffReportQuery{
		from:         from,
		to:           to,
		distributors: distributors,
		sites:        sites,
		guard:        guard.NewConstructorGuard(),
	}

	if err := query.setCodes(codes); err != nil {
		return PickupDropoffReportQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrPickupDropoffReportQueryIsNotConstructed if validation fails.
func (q PickupDropoffReportQuery) Validate() error {
	return q.guard.Validate(ErrPickupDropoffReportQueryIsNotConstructed)
}

// Codes returns the held classification codes from the query.
func (q PickupDropoffReportQuery) Codes() []string {
	return q.codes
}

// From returns the lower bound of the date range, zero for unbounded.
func (q PickupDropoffReportQuery) From() time.Time {
	return q.from
}

// To returns the upper bound of the date range, zero for unbounded.
func (q PickupDropoffReportQuery) To() time.Time {
	return q.to
}

// Distributors returns the distributor filter, empty for no filter.
func (q PickupDropoffReportQuery) Distributors() []string {
	return q.distributors
}

// Sites returns the site filter, empty for no filter.
func (q PickupDropoffReportQuery) Sites() []string {
	return q.sites
}

func (q *PickupDropoffReportQuery) setCodes(codes []string) error {
	if len(codes) == 0 {
		return ErrHeldCodesAreRequired
	}

	q.codes = codes
	return nil
}

// PickupDropoffReportQueryResponse represents one escalation report row.
type PickupDropoffReportQueryResponse struct {
	Distributor string
	Site        string
	Count       int64
}
