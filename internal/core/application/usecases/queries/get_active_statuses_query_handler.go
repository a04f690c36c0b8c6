package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveStatusesQueryHandler retrieves a distributor's active statuses
// from the database. This is the list operators pick from when moving a
// parcel, so ordering is stable across calls.
type GetActiveStatusesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveStatusesQueryHandler creates a handler for active status queries.
// Requires a GORM database connection for query execution.
func NewGetActiveStatusesQueryHandler(db *gorm.DB) GetActiveStatusesQueryHandler {
	return GetActiveStatusesQueryHandler{db: db}
}

// Handle executes the query to retrieve active statuses for a distributor.
// Results are sorted by registration order, then ID for a stable tiebreak.
func (h GetActiveStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveStatusesQuery,
) ([]GetActiveStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]GetActiveStatusesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			classification_code
		FROM statuses
		WHERE distributor = ?
		  AND active
		ORDER BY created_at, id
	`, query.Distributor()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var statusResp GetActiveStatusesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&statusResp.Name,
			&statusResp.ClassificationCode,
		)
		if err != nil {
			return nil, err
		}

		statusID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		statusResp.ID = statusID

		statuses = append(statuses, statusResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
