package queries

import (
	"context"

	"gorm.io/gorm"
)

// LostParcelsReportQueryHandler builds the lost parcels report.
type LostParcelsReportQueryHandler struct {
	db *gorm.DB
}

// NewLostParcelsReportQueryHandler creates a handler for lost parcel reports.
// Requires a GORM database connection for query execution.
func NewLostParcelsReportQueryHandler(db *gorm.DB) LostParcelsReportQueryHandler {
	return LostParcelsReportQueryHandler{db: db}
}

// Handle executes the report query.
// Rows are sorted by distributor then site for a stable report layout.
func (h LostParcelsReportQueryHandler) Handle(
	ctx context.Context,
	query LostParcelsReportQuery,
) ([]LostParcelsReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]LostParcelsReportQueryResponse, 0)

	sql := `
		SELECT
			distributor,
			site,
			COUNT(*) AS parcel_count
		FROM parcels
		WHERE status = ?
	`
	args := []any{query.Status()}

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
		var row LostParcelsReportQueryResponse

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
