package queries

import (
	"context"

	"gorm.io/gorm"
)

// HeldParcelsReportQueryHandler builds the held parcels report.
type HeldParcelsReportQueryHandler struct {
	db *gorm.DB
}

// NewHeldParcelsReportQueryHandler creates a handler for held parcel reports.
// Requires a GORM database connection for query execution.
func NewHeldParcelsReportQueryHandler(db *gorm.DB) HeldParcelsReportQueryHandler {
	return HeldParcelsReportQueryHandler{db: db}
}

// Handle executes the report query.
// Rows are sorted by distributor then site for a stable report layout.
func (h HeldParcelsReportQueryHandler) Handle(
	ctx context.Context,
	query HeldParcelsReportQuery,
) ([]HeldParcelsReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]HeldParcelsReportQueryResponse, 0)

	sql := `
		SELECT
			distributor,
			site,
			COUNT(*) AS parcel_count
		FROM parcels
		WHERE classification_code IN ?
	`
	args := []any{query.Codes()}

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
		var row HeldParcelsReportQueryResponse

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
