package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
)

// EmailSender delivers notification emails to distributor contacts.
type EmailSender interface {
	// Send delivers a single email message.
	Send(ctx context.Context, to, subject, body string) error
}

// NotifyOverdueParcelsCommandHandler runs the overdue notification sweep.
// Collects parcels whose status has been unchanged past the threshold, groups
// them by distributor and emails each distributor its own list. A failed send
// is logged and skipped so one unreachable mailbox cannot starve the rest.
//
// Example:
//
//	handler := NewNotifyOverdueParcelsCommandHandler(uowFactory, sender, portalURL, logger)
//	cmd, _ := NewNotifyOverdueParcelsCommand(48 * time.Hour)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("sweep failed: %v", err)
//	}
type NotifyOverdueParcelsCommandHandler struct {
	uowFactory NotificationUoWFactory
	sender     EmailSender
	portalURL  string
	logger     *slog.Logger
}

// NewNotifyOverdueParcelsCommandHandler creates a handler for overdue sweeps.
// The portal URL is embedded in every reminder so recipients can jump
// straight to their parcel list.
func NewNotifyOverdueParcelsCommandHandler(
	uowFactory NotificationUoWFactory, sender EmailSender, portalURL string, logger *slog.Logger,
) NotifyOverdueParcelsCommandHandler {
	return NotifyOverdueParcelsCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		portalURL:  portalURL,
		logger:     logger.With("component", "overdue-notifications"),
	}
}

// Handle processes the notification sweep command.
// Returns an error only when the sweep itself cannot run; per-distributor
// send failures are logged and do not abort the run.
func (h NotifyOverdueParcelsCommandHandler) Handle(ctx context.Context, command NotifyOverdueParcelsCommand) error {
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

	cutoff := time.Now().UTC().Add(-command.Threshold())

	staleParcels, err := uow.ParcelRepository().GetStaleBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(staleParcels) == 0 {
		h.logger.InfoContext(ctx, "no overdue parcels found", "cutoff", cutoff)
		return nil
	}

	byDistributor := groupByDistributor(staleParcels)

	names := make([]string, 0, len(byDistributor))
	for name := range byDistributor {
		names = append(names, name)
	}

	distributors, err := uow.DistributorRepository().GetByNames(ctx, names)
	if err != nil {
		return err
	}

	contacts := make(map[string]string, len(distributors))
	for _, d := range distributors {
		contacts[d.Name()] = d.Email()
	}

	for name, parcels := range byDistributor {
		email, ok := contacts[name]
		if !ok {
			h.logger.WarnContext(ctx, "no contact email for distributor",
				"distributor", name, "parcels", len(parcels))
			continue
		}

		subject := fmt.Sprintf("Overdue parcels reminder: %d parcels awaiting action", len(parcels))
		body := h.composeBody(name, parcels, command.Threshold())

		if err = h.sender.Send(ctx, email, subject, body); err != nil {
			h.logger.ErrorContext(ctx, "failed to send overdue reminder",
				"distributor", name, "error", err)
			continue
		}

		h.logger.InfoContext(ctx, "sent overdue reminder",
			"distributor", name, "parcels", len(parcels))
	}

	return nil
}

func (h NotifyOverdueParcelsCommandHandler) composeBody(
	distributor string, parcels []*parcel.Parcel, threshold time.Duration,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s,\n\n", distributor)
	fmt.Fprintf(&b, "The following parcels have had no status change for more than %d hours:\n\n",
		int(threshold.Hours()))

	for _, p := range parcels {
		fmt.Fprintf(&b, "  %s - %s (since %s)\n",
			p.ID(), p.Status(), p.StatusChangedAt().Format(time.RFC3339))
	}

	fmt.Fprintf(&b, "\nPlease review them at %s\n", h.portalURL)

	return b.String()
}

func groupByDistributor(parcels []*parcel.Parcel) map[string][]*parcel.Parcel {
	grouped := make(map[string][]*parcel.Parcel)
	for _, p := range parcels {
		grouped[p.Distributor()] = append(grouped[p.Distributor()], p)
	}

	return grouped
}
