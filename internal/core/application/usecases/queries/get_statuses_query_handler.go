package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusesQueryHandler retrieves the full status registry from the database.
type GetStatusesQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusesQueryHandler creates a handler for registry listing queries.
// Requires a GORM database connection for query execution.
func NewGetStatusesQueryHandler(db *gorm.DB) GetStatusesQueryHandler {
	return GetStatusesQueryHandler{db: db}
}

// Handle executes the query to retrieve all registry entries.
// Results are grouped by distributor and sorted by registration order.
func (h GetStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetStatusesQuery,
) ([]GetStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]GetStatusesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			distributor,
			name,
			classification_code,
			active
		FROM statuses
		ORDER BY distributor, created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var statusResp GetStatusesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&statusResp.Distributor,
			&statusResp.Name,
			&statusResp.ClassificationCode,
			&statusResp.Active,
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
