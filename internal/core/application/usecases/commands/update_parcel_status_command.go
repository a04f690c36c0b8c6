package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
		"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
	)
	ErrParcelIDIsRequired = errors.New("parcel ID is required")
	ErrStatusIsRequired   = errors.New("status is required")
)

// UpdateParcelStatusCommand represents a request to move a parcel to a new status.
// Encapsulates the parcel identifier, the target status name and optional
// operator comments. The status is resolved against the active registry of the
// parcel's distributor at handling time.
//
// Example:
//
//	comments := "left at pickup point"
//	cmd, err := NewUpdateParcelStatusCommand("PT-1042", "Delivered", &comments)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewUpdateParcelStatusCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to update parcel: %w", err)
//	}
//	fmt.Printf("Parcel %s is now %s", updated.ID(), updated.Status())
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID string
	status   string
	comments *string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to transition a parcel.
// Validates that the parcel ID and target status are not empty.
// Comments may be nil, which leaves the stored comments unchanged.
func NewUpdateParcelStatusCommand(parcelID, status string, comments *string) (UpdateParcelStatusCommand, error) {
	command := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setStatus(status),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	command.comments = comments
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel identifier from the command.
func (c UpdateParcelStatusCommand) ParcelID() string {
	return c.parcelID
}

// Status returns the target status name from the command.
func (c UpdateParcelStatusCommand) Status() string {
	return c.status
}

// Comments returns the optional operator comments from the command.
// A nil value means the stored comments are preserved.
func (c UpdateParcelStatusCommand) Comments() *string {
	return c.comments
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID string) error {
	if parcelID == "" {
		return ErrParcelIDIsRequired
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status string) error {
	if status == "" {
		return ErrStatusIsRequired
	}

	c.status = status
	return nil
}
