package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// PickupDropoffReportQueryHandler builds the pickup/dropoff escalation report.
// Narrows the held population to parcels stale past the one week escalation
// window.
type PickupDropoffReportQueryHandler struct {
	db *gorm.DB
}

// NewPickupDropoffReportQueryHandler creates a handler for escalation reports.
// Requires a GORM database connection for query execution.
func NewPickupDropoffReportQueryHandler(db *gorm.DB) PickupDropoffReportQueryHandler {
	return PickupDropoffReportQueryHandler{db: db}
}

// Handle executes the report query.
// Rows are sorted by distributor then site for a stable report layout.
func (h PickupDropoffReportQueryHandler) Handle(
	ctx context.Context,
	query PickupDropoffReportQuery,
) ([]PickupDropoffReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-pickupDropoffStaleAfter)
	report := make([]PickupDropoffReportQueryResponse, 0)

	sql := `
		SELECT
			distributor,
			site,
			COUNT(*) AS parcel_count
		FROM parcels
		WHERE classification_code IN ?
		  AND status_changed_at < ?
	`
	args := []any{query.Codes(), cutoff}

	if !query.From().IsZero() {
		sql += ` AND status_changed_at >= ?`
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		sql += ` AND status_changed_at <= ?`
		args = append(args, query.To())
	}
	if len(query.Distributors()) > 0 {
		sql += ` AND distributor IN ?`
		args = append(args, query.Distributors())
	}
	if len(query.Sites()) > 0 {
		sql += ` AND site IN ?`
		args = append(args, query.Sites())
	}

	sql += `
		GROUP BY distributor, site
		ORDER BY distributor, site
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row PickupDropoffReportQueryResponse

		err = rows.Scan(
			&row.Distributor,
			&row.Site,
			&row.Count,
		)
		if err != nil {
			return nil, err
		}

		report = append(report, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
