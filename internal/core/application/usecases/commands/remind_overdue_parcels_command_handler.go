package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/notification"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
)

// RemindOverdueParcelsCommandHandler sweeps pending parcels whose deadline
// has passed and notifies their requesters. The reminder flag and the
// notification for each parcel are written in the same transaction, and the
// conditional write skips parcels that got claimed while the sweep ran.
type RemindOverdueParcelsCommandHandler struct {
	uowFactory UoWFactory
	composer   services.NotificationComposer
	logger     *slog.Logger
}

// NewRemindOverdueParcelsCommandHandler creates a handler for the reminder sweep.
func NewRemindOverdueParcelsCommandHandler(
	uowFactory UoWFactory,
	logger *slog.Logger,
) RemindOverdueParcelsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return RemindOverdueParcelsCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewNotificationComposer(),
		logger:     logger,
	}
}

// Handle processes the reminder sweep command.
// Loads every overdue pending parcel that has not been reminded yet, flags
// it and appends the reminder notification. A parcel that changed state
// under the sweep is skipped, not treated as a failure.
func (h RemindOverdueParcelsCommandHandler) Handle(
	ctx context.Context,
	cmd RemindOverdueParcelsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	notificationRepo := uow.NotificationRepository()

	overdue, err := parcelRepo.GetOverduePending(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	if len(overdue) == 0 {
		return nil
	}

	reminded := 0
	for _, aggregate := range overdue {
		prior := aggregate.Precondition()

		if err = aggregate.MarkReminded(); err != nil {
			return err
		}

		draft, composeErr := h.composer.ComposeOverdueReminder(aggregate)
		if composeErr != nil {
			return composeErr
		}

		err = parcelRepo.UpdateConditional(ctx, aggregate, prior)
		if errors.Is(err, ports.ErrPreconditionNotMatched) {
			h.logger.Info("overdue parcel changed state during sweep, skipping",
				"parcel_id", aggregate.ID().String())
			continue
		}
		if err != nil {
			return err
		}

		entity, buildErr := notification.NewNotification(
			kernel.NewUUID(),
			draft.Recipient,
			draft.Message,
			aggregate.ID(),
			aggregate.Requester(),
			time.Now().UTC(),
		)
		if buildErr != nil {
			return buildErr
		}

		if err = notificationRepo.Add(ctx, entity); err != nil {
			return err
		}
		reminded++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("overdue reminder sweep finished",
		"overdue", len(overdue),
		"reminded", reminded)

	return nil
}
