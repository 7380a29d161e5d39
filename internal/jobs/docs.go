// Package jobs provides scheduled background tasks for the parcel board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery board.
//
// # Available Jobs
//
// 1. DeadlineReminderJob - Runs every minute to remind requesters about
// pending parcels whose deadline has passed. Each parcel is reminded once.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindOverdueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job logs failures and retries on the next tick; a parcel
// claimed between the overdue query and the reminder update is skipped and
// picked up again if it returns to pending.
package jobs
