package commands

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrNotifyOverdueParcelsCommandIsNotConstructed = errors.New(
		"NotifyOverdueParcelsCommand must be created via NewNotifyOverdueParcelsCommand constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// NotifyOverdueParcelsCommand represents one run of the overdue notification
// sweep. Parcels whose status has not changed within the threshold are
// grouped by distributor and each distributor receives one reminder email.
//
// Example:
//
//	cmd, err := NewNotifyOverdueParcelsCommand(48 * time.Hour)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("notification sweep failed: %v", err)
//	}
type NotifyOverdueParcelsCommand struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewNotifyOverdueParcelsCommand creates a command for an overdue sweep.
// Validates that the staleness threshold is positive.
func NewNotifyOverdueParcelsCommand(threshold time.Duration) (NotifyOverdueParcelsCommand, error) {
	command := NotifyOverdueParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setThreshold(threshold); err != nil {
		return NotifyOverdueParcelsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrNotifyOverdueParcelsCommandIsNotConstructed if validation fails.
func (c NotifyOverdueParcelsCommand) Validate() error {
	return c.guard.Validate(ErrNotifyOverdueParcelsCommandIsNotConstructed)
}

// Threshold returns the staleness threshold from the command.
func (c NotifyOverdueParcelsCommand) Threshold() time.Duration {
	return c.threshold
}

func (c *NotifyOverdueParcelsCommand) setThreshold(threshold time.Duration) error {
	if threshold <= 0 {
		return ErrThresholdIsInvalid
	}

	c.threshold = threshold
	return nil
}
