package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents a request to change the name,
// classification code or active flag of an existing registry entry. The
// entry's distributor is not touched. A nil active pointer leaves the
// stored flag unchanged; a non-nil one sets it, so a deactivated entry
// can be brought back into use.
//
// Example:
//
//	active := true
//	cmd, err := NewUpdateStatusCommand(statusID, "Held at depot", "52", &active)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update status: %w", err)
//	}
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	statusID           kernel.UUID
	name               string
	classificationCode string
	active             *bool

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to edit a registry entry.
// Validates that the entry ID is valid and name and code are not empty.
func NewUpdateStatusCommand(
	statusID kernel.UUID, name, classificationCode string, active *bool,
) (UpdateStatusCommand, error) {
	command := UpdateStatusCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStatusID(statusID),
		command.setName(name),
		command.setClassificationCode(classificationCode),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateStatusCommandIsNotConstructed if validation fails.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// StatusID returns the registry entry ID from the command.
func (c UpdateStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

// Name returns the new status name from the command.
func (c UpdateStatusCommand) Name() string {
	return c.name
}

// ClassificationCode returns the new classification code from the command.
func (c UpdateStatusCommand) ClassificationCode() string {
	return c.classificationCode
}

// Active returns the requested active flag, nil when unchanged.
func (c UpdateStatusCommand) Active() *bool {
	return c.active
}

func (c *UpdateStatusCommand) setStatusID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.statusID = id
	return nil
}

func (c *UpdateStatusCommand) setName(name string) error {
	if name == "" {
		return ErrStatusNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateStatusCommand) setClassificationCode(code string) error {
	if code == "" {
		return ErrClassificationCodeIsRequired
	}

	c.classificationCode = code
	return nil
}
