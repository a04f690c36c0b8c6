package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrAddStatusCommandIsNotConstructed = errors.New(
		"AddStatusCommand must be created via NewAddStatusCommand constructor",
	)
	ErrDistributorIsRequired        = errors.New("distributor is required")
	ErrStatusNameIsRequired         = errors.New("status name is required")
	ErrClassificationCodeIsRequired = errors.New("classification code is required")
)

// AddStatusCommand represents a request to register a new status for a
// distributor. New entries start active and become immediately resolvable
// by parcel transitions.
//
// Example:
//
//	cmd, err := NewAddStatusCommand("Exelot", "Delivered", "05")
//	if err != nil {
//	    return fmt.Errorf("invalid status data: %w", err)
//	}
//
//	handler := NewAddStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add status: %w", err)
//	}
//	fmt.Printf("Created status with ID: %s", cmd.StatusID())
type AddStatusCommand struct { //nolint:recvcheck //using for validation
	statusID           kernel.UUID
	distributor        string
	name               string
	classificationCode string

	guard guard.ConstructorGuard
}

// NewAddStatusCommand creates a command to register a new status entry.
// Automatically generates a unique ID for the entry.
// Validates that distributor, name and classification code are not empty.
func NewAddStatusCommand(distributor, name, classificationCode string) (AddStatusCommand, error) {
	command := AddStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStatusID(kernel.NewUUID()),
		command.setDistributor(distributor),
		command.setName(name),
		command.setClassificationCode(classificationCode),
	); err != nil {
		return AddStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddStatusCommandIsNotConstructed if validation fails.
func (c AddStatusCommand) Validate() error {
	return c.guard.Validate(ErrAddStatusCommandIsNotConstructed)
}

// StatusID returns the generated entry ID from the command.
func (c AddStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

// Distributor returns the distributor name from the command.
func (c AddStatusCommand) Distributor() string {
	return c.distributor
}

// Name returns the status name from the command.
func (c AddStatusCommand) Name() string {
	return c.name
}

// ClassificationCode returns the classification code from the command.
func (c AddStatusCommand) ClassificationCode() string {
	return c.classificationCode
}

func (c *AddStatusCommand) setStatusID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.statusID = id
	return nil
}

func (c *AddStatusCommand) setDistributor(distributor string) error {
	if distributor == "" {
		return ErrDistributorIsRequired
	}

	c.distributor = distributor
	return nil
}

func (c *AddStatusCommand) setName(name string) error {
	if name == "" {
		return ErrStatusNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddStatusCommand) setClassificationCode(code string) error {
	if code == "" {
		return ErrClassificationCodeIsRequired
	}

	c.classificationCode = code
	return nil
}
