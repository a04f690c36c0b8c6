// Package jobs provides scheduled background tasks for the parcel tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueNotificationJob - Emails each distributor its parcels with no
// status change past the staleness threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(notifyHandler, spec, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Cron specs use six fields (seconds resolution). The default overdue sweep
// spec "0 0 9 * * 0-4" runs at 09:00 Sunday through Thursday, matching the
// distributor work week.
//
// # Error Handling
//
// Sweep failures are logged and the schedule keeps running; per-distributor
// email failures are handled inside the command and never fail the sweep.
package jobs
