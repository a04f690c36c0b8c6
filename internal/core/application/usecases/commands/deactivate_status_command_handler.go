package commands

import (
	"context"
)

// DeactivateStatusCommandHandler retires registry entries without deleting them.
// Deactivation is idempotent: retiring an already inactive entry succeeds and
// changes nothing.
type DeactivateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewDeactivateStatusCommandHandler creates a handler for status deactivation.
func NewDeactivateStatusCommandHandler(uowFactory StatusUoWFactory) DeactivateStatusCommandHandler {
	return DeactivateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command.
// Returns an object-not-found error when the entry does not exist.
func (h DeactivateStatusCommandHandler) Handle(ctx context.Context, command DeactivateStatusCommand) error {
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

	entry.Deactivate()

	if err = statusRepo.Update(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
