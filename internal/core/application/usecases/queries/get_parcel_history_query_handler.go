package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelHistoryQueryHandler retrieves a parcel's audit trail from the database.
// Reads the append-only ledger directly; an unknown parcel yields an empty trail.
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelHistoryQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve a parcel's transitions.
// Results are sorted oldest first so the trail reads chronologically.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetParcelHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			old_status,
			new_status,
			old_classification_code,
			new_classification_code,
			changed_at
		FROM audit_entries
		WHERE parcel_id = ?
		ORDER BY changed_at, id
	`, query.ParcelID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var changeResp GetParcelHistoryQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&changeResp.OldStatus,
			&changeResp.NewStatus,
			&changeResp.OldClassificationCode,
			&changeResp.NewClassificationCode,
			&changeResp.ChangedAt,
		)
		if err != nil {
			return nil, err
		}

		changeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		changeResp.ID = changeID

		history = append(history, changeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
