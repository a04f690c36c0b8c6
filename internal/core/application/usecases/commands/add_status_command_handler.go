package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/status"
)

// AddStatusCommandHandler registers new status entries in the registry.
// Persists the entry within a transaction so concurrent registrations of the
// same (distributor, name) pair fail on the unique constraint rather than
// producing duplicates.
type AddStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewAddStatusCommandHandler creates a handler for status registration.
func NewAddStatusCommandHandler(uowFactory StatusUoWFactory) AddStatusCommandHandler {
	return AddStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status registration command.
// Creates an active registry entry and persists it.
func (h AddStatusCommandHandler) Handle(ctx context.Context, command AddStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := status.NewEntry(
		command.StatusID(),
		command.Distributor(),
		command.Name(),
		command.ClassificationCode(),
	)
	if err != nil {
		return err
	}

	if err = uow.StatusRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
