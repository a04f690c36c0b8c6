package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsQueryHandler retrieves parcel listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetParcelsQueryHandler(db)
//	query := NewGetParcelsQuery("")
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get parcels: %v", err)
//	    return err
//	}
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a GORM database connection for query execution.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve parcels.
// Results are sorted by most recent status change first.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) ([]GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetParcelsQueryResponse, 0)

	sql := `
		SELECT
			id,
			distributor,
			status,
			classification_code,
			comments,
			site,
			status_changed_at
		FROM parcels
	`
	args := make([]any, 0, 1)

	if query.Distributor() != "" {
		sql += ` WHERE distributor = ?`
		args = append(args, query.Distributor())
	}

	sql += ` ORDER BY status_changed_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelResp GetParcelsQueryResponse

		err = rows.Scan(
			&parcelResp.ID,
			&parcelResp.Distributor,
			&parcelResp.Status,
			&parcelResp.ClassificationCode,
			&parcelResp.Comments,
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
