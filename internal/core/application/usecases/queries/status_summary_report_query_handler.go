package queries

import (
	"context"

	"gorm.io/gorm"
)

// StatusSummaryReportQueryHandler builds the status summary report.
// Joins parcels with classification code descriptions; codes without a
// description row fall back to "No description" so grouping stays total.
type StatusSummaryReportQueryHandler struct {
	db *gorm.DB
}

// NewStatusSummaryReportQueryHandler creates a handler for status summary reports.
// Requires a GORM database connection for query execution.
func NewStatusSummaryReportQueryHandler(db *gorm.DB) StatusSummaryReportQueryHandler {
	return StatusSummaryReportQueryHandler{db: db}
}

// Handle executes the report query.
// Rows are sorted by distributor then status for a stable report layout.
func (h StatusSummaryReportQueryHandler) Handle(
	ctx context.Context,
	query StatusSummaryReportQuery,
) ([]StatusSummaryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summary := make([]StatusSummaryReportQueryResponse, 0)

	sql := `
		SELECT
			p.status,
			p.distributor,
			COALESCE(c.description, 'No description') AS code_description,
			COUNT(*) AS parcel_count
		FROM parcels p
		LEFT JOIN classification_codes c ON c.code = p.classification_code
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if !query.From().IsZero() {
		sql += ` AND p.status_changed_at >= ?`
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		sql += ` AND p.status_changed_at <= ?`
		args = append(args, query.To())
	}
	if len(query.Distributors()) > 0 {
		sql += ` AND p.distributor IN ?`
		args = append(args, query.Distributors())
	}

	sql += `
		GROUP BY p.status, p.distributor, code_description
		ORDER BY p.distributor, p.status
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row StatusSummaryReportQueryResponse

		err = rows.Scan(
			&row.Status,
			&row.Distributor,
			&row.CodeDescription,
			&row.Count,
		)
		if err != nil {
			return nil, err
		}

		summary = append(summary, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
