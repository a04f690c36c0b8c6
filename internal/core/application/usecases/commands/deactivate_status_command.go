package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrDeactivateStatusCommandIsNotConstructed = errors.New(
	"DeactivateStatusCommand must be created via NewDeactivateStatusCommand constructor",
)

// DeactivateStatusCommand represents a request to retire a registry entry.
// The entry stays in storage so historical transitions keep their meaning,
// but it can no longer be resolved by new parcel transitions.
//
// Example:
//
//	cmd, err := NewDeactivateStatusCommand(statusID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to deactivate status: %w", err)
//	}
type DeactivateStatusCommand struct { //nolint:recvcheck //using for validation
	statusID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateStatusCommand creates a command to retire a registry entry.
// Validates that the entry ID is valid.
func NewDeactivateStatusCommand(statusID kernel.UUID) (DeactivateStatusCommand, error) {
	command := DeactivateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setStatusID(statusID); err != nil {
		return DeactivateStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeactivateStatusCommandIsNotConstructed if validation fails.
func (c DeactivateStatusCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateStatusCommandIsNotConstructed)
}

// StatusID returns the registry entry ID from the command.
func (c DeactivateStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

func (c *DeactivateStatusCommand) setStatusID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.statusID = id
	return nil
}
