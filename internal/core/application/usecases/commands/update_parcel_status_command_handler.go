package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// ErrStatusNotAllowed signals that the requested status is not an active
// registry entry for the parcel's distributor. Deactivated entries are
// treated the same as entries that never existed.
var ErrStatusNotAllowed = errors.New("status is not allowed for distributor")

// UpdateParcelStatusCommandHandler orchestrates a single parcel status transition.
// Loads the parcel, resolves the target status against the distributor's active
// registry, applies the transition and appends an audit entry. The parcel
// update and the audit append commit in the same transaction so the ledger
// never records a transition that did not happen.
//
// Example:
//
//	handler := NewUpdateParcelStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateParcelStatusCommand("PT-1042", "Delivered", nil)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown parcel")
//	case errors.Is(err, ErrStatusNotAllowed):
//	    log.Println("Status not in the distributor's active registry")
//	case err != nil:
//	    log.Printf("Transition failed: %v", err)
//	default:
//	    log.Printf("Parcel is now %s", updated.Status())
//	}
type UpdateParcelStatusCommandHandler struct {
	uowFactory TransitionUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for parcel status transitions.
// Requires a TransitionUoWFactory so the parcel update and audit append share a transaction.
func NewUpdateParcelStatusCommandHandler(uowFactory TransitionUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Returns errs.ErrObjectNotFound (wrapped) when the parcel does not exist and
// ErrStatusNotAllowed when the status is absent from the distributor's active
// registry. On success returns the updated parcel. Old status and
// classification code are captured before mutation; the audit entry carries
// the same timestamp written to the parcel.
func (h UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context, command UpdateParcelStatusCommand,
) (*parcel.Parcel, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	statusRepo := uow.StatusRepository()
	auditRepo := uow.AuditRepository()

	trackedParcel, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return nil, err
	}

	statusEntry, err := statusRepo.ResolveActive(ctx, trackedParcel.Distributor(), command.Status())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %q for distributor %q",
			ErrStatusNotAllowed, command.Status(), trackedParcel.Distributor())
	}
	if err != nil {
		return nil, err
	}

	change, err := services.NewTransitionResolver().Apply(
		trackedParcel, statusEntry, command.Comments(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, trackedParcel); err != nil {
		return nil, err
	}

	auditEntry, err := audit.NewEntry(
		kernel.NewUUID(),
		change.ParcelID,
		change.OldStatus,
		change.NewStatus,
		change.OldClassificationCode,
		change.NewClassificationCode,
		change.ChangedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = auditRepo.Add(ctx, auditEntry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return trackedParcel, nil
}
