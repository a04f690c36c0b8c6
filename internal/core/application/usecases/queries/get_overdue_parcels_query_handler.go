package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetOverdueParcelsQueryHandler retrieves overdue parcels from the database.
// A parcel is overdue when its last status change is older than the query
// threshold and its classification code is not a terminal handling code.
type GetOverdueParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueParcelsQueryHandler creates a handler for overdue parcel queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueParcelsQueryHandler(db *gorm.DB) GetOverdueParcelsQueryHandler {
	return GetOverdueParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve overdue parcels.
// Results are sorted oldest change first so the most neglected parcels lead.
func (h GetOverdueParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueParcelsQuery,
) ([]GetOverdueParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.Threshold())
	parcels := make([]GetOverdueParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			distributor,
			status,
			classification_code,
			site,
			status_changed_at
		FROM parcels
		WHERE status_changed_at < ?
		  AND classification_code NOT IN ?
		ORDER BY status_changed_at, id
	`, cutoff, excludedOverdueCodes).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelResp GetOverdueParcelsQueryResponse

		err = rows.Scan(
			&parcelResp.ID,
			&parcelResp.Distributor,
			&parcelResp.Status,
			&parcelResp.ClassificationCode,
			&parcelResp.Site,
			&parcelResp.StatusChangedAt,
		)
		if err != nil {
			return nil, err
		}

		parcels = append(parcels, parcelResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
