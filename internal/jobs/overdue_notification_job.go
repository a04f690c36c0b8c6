package jobs

import (
	"context"
	"log/slog"
	"time"

	"parceltrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueNotificationJob runs the scheduled overdue parcel sweep.
// On each tick it triggers the notification command, which emails every
// distributor a list of its parcels with no status change past the threshold.
type OverdueNotificationJob struct {
	handler   commands.NotifyOverdueParcelsCommandHandler
	spec      string
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueNotificationJob creates a new job for overdue notifications.
// The cron spec uses six fields (seconds resolution) and the threshold sets
// how long a parcel may sit unchanged before it counts as overdue.
func NewOverdueNotificationJob(
	handler commands.NotifyOverdueParcelsCommandHandler,
	spec string,
	threshold time.Duration,
	logger *slog.Logger,
) *OverdueNotificationJob {
	return &OverdueNotificationJob{
		handler:   handler,
		spec:      spec,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "overdue_notification_job"),
	}
}

// Start schedules the overdue notification sweep.
func (j *OverdueNotificationJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewNotifyOverdueParcelsCommand(j.threshold)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Overdue notification job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue notification job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue notification job started",
		"spec", j.spec, "threshold", j.threshold)
	return nil
}

// Stop stops the overdue notification job.
func (j *OverdueNotificationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue notification job stopped")
}
