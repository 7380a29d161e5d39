package jobs

import (
	"context"
	"log/slog"

	"parcelhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeadlineReminderJob manages the scheduled sweep of overdue pending parcels.
// Runs every minute to notify requesters whose parcels nobody claimed in time.
type DeadlineReminderJob struct {
	handler commands.RemindOverdueParcelsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeadlineReminderJob creates a new job for reminding about overdue parcels.
// Uses RemindOverdueParcelsCommandHandler to process the sweep every minute.
func NewDeadlineReminderJob(handler commands.RemindOverdueParcelsCommandHandler, logger *slog.Logger) *DeadlineReminderJob {
	return &DeadlineReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "deadline_reminder_job"),
	}
}

// Start begins the reminder job to run at the top of every minute.
func (j *DeadlineReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRemindOverdueParcelsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Deadline reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *DeadlineReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deadline reminder job stopped")
}
