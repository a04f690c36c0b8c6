package commands

import (
	"context"
)

// UpdateStatusCommandHandler edits existing registry entries.
// Loads the entry, applies the new name, classification code and optional
// active flag through the domain model and persists the result in one
// transaction.
type UpdateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewUpdateStatusCommandHandler creates a handler for registry entry edits.
func NewUpdateStatusCommandHandler(uowFactory StatusUoWFactory) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registry edit command.
// Returns an object-not-found error when the entry does not exist.
func (h UpdateStatusCommandHandler) Handle(ctx context.Context, command UpdateStatusCommand) error {
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

	statusRepo := uow.StatusRepository()

	entry, err := statusRepo.Get(ctx, command.StatusID())
	if err != nil {
		return err
	}

	if err = entry.Update(command.Name(), command.ClassificationCode()); err != nil {
		return err
	}

	if active := command.Active(); active != nil {
		if *active {
			entry.Activate()
		} else {
			entry.Deactivate()
		}
	}

	if err = statusRepo.Update(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
