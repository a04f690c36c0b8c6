package commands

import (
	"context"
	"log/slog"
)

// SkippedRow records an import row that could not be applied and why.
type SkippedRow struct {
	ParcelID string
	Reason   string
}

// ImportResult summarizes a bulk import run: the parcels that were updated
// and the rows that were skipped with their reasons.
type ImportResult struct {
	Updated []string
	Skipped []SkippedRow
}

// ImportParcelStatusesCommandHandler applies a bulk status upload row by row.
// Each row runs as its own transaction through the single-transition handler,
// so one failing row cannot roll back the others. Rows with a missing ID or
// status, an unknown parcel or a disallowed status are skipped and reported.
//
// Example:
//
//	handler := NewImportParcelStatusesCommandHandler(updateHandler, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	for _, skipped := range result.Skipped {
//	    log.Printf("row %s skipped: %s", skipped.ParcelID, skipped.Reason)
//	}
type ImportParcelStatusesCommandHandler struct {
	updateHandler UpdateParcelStatusCommandHandler
	logger        *slog.Logger
}

// NewImportParcelStatusesCommandHandler creates a handler for bulk status imports.
// Delegates per-row work to the single-transition handler.
func NewImportParcelStatusesCommandHandler(
	updateHandler UpdateParcelStatusCommandHandler, logger *slog.Logger,
) ImportParcelStatusesCommandHandler {
	return ImportParcelStatusesCommandHandler{
		updateHandler: updateHandler,
		logger:        logger.With("component", "import"),
	}
}

// Handle processes the bulk import command.
// Returns an error only for an invalid command or a cancelled context; row
// level failures are collected into the result instead.
func (h ImportParcelStatusesCommandHandler) Handle(
	ctx context.Context, command ImportParcelStatusesCommand,
) (ImportResult, error) {
	if err := command.Validate(); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{
		Updated: make([]string, 0, len(command.Rows())),
	}

	for _, row := range command.Rows() {
		if err := ctx.Err(); err != nil {
			return ImportResult{}, err
		}

		updateCommand, err := NewUpdateParcelStatusCommand(row.ParcelID, row.Status, row.Comments)
		if err != nil {
			h.logger.WarnContext(ctx, "skipping malformed import row",
				"parcelID", row.ParcelID, "error", err)
			result.Skipped = append(result.Skipped, SkippedRow{
				ParcelID: row.ParcelID,
				Reason:   err.Error(),
			})
			continue
		}

		if _, err = h.updateHandler.Handle(ctx, updateCommand); err != nil {
			h.logger.WarnContext(ctx, "skipping failed import row",
				"parcelID", row.ParcelID, "status", row.Status, "error", err)
			result.Skipped = append(result.Skipped, SkippedRow{
				ParcelID: row.ParcelID,
				Reason:   err.Error(),
			})
			continue
		}

		result.Updated = append(result.Updated, row.ParcelID)
	}

	h.logger.InfoContext(ctx, "bulk import finished",
		"updated", len(result.Updated), "skipped", len(result.Skipped))

	return result, nil
}
