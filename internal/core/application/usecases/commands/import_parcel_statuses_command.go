package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrImportParcelStatusesCommandIsNotConstructed = errors.New(
		"ImportParcelStatusesCommand must be created via NewImportParcelStatusesCommand constructor",
	)
	ErrImportRowsAreRequired = errors.New("at least one import row is required")
)

// ImportRow is one parsed line of a bulk status upload: the parcel to move,
// the target status name and optional comments.
type ImportRow struct {
	ParcelID string
	Status   string
	Comments *string
}

// ImportParcelStatusesCommand represents a bulk status update parsed from an
// uploaded file. Rows are applied independently: a bad row is skipped and
// reported, never aborting the rest of the batch.
//
// Example:
//
//	rows := []ImportRow{
//	    {ParcelID: "PT-1042", Status: "Delivered"},
//	    {ParcelID: "PT-1043", Status: "Lost"},
//	}
//	cmd, err := NewImportParcelStatusesCommand(rows)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	fmt.Printf("updated %d, skipped %d", result.Updated, len(result.Skipped))
type ImportParcelStatusesCommand struct { //nolint:recvcheck //using for validation
	rows []ImportRow

	guard guard.ConstructorGuard
}

// NewImportParcelStatusesCommand creates a command carrying the rows of a bulk upload.
// Validates that the batch is not empty.
func NewImportParcelStatusesCommand(rows []ImportRow) (ImportParcelStatusesCommand, error) {
	command := ImportParcelStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRows(rows); err != nil {
		return ImportParcelStatusesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrImportParcelStatusesCommandIsNotConstructed if validation fails.
func (c ImportParcelStatusesCommand) Validate() error {
	return c.guard.Validate(ErrImportParcelStatusesCommandIsNotConstructed)
}

// Rows returns the import rows from the command.
func (c ImportParcelStatusesCommand) Rows() []ImportRow {
	return c.rows
}

func (c *ImportParcelStatusesCommand) setRows(rows []ImportRow) error {
	if len(rows) == 0 {
		return ErrImportRowsAreRequired
	}

	c.rows = rows
	return nil
}
