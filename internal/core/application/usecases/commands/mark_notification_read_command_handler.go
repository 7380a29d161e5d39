package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler handles read acknowledgements.
// The recipient check lives on the notification aggregate; anyone else
// gets an error unwrapping to errs.ErrOperationForbidden.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for read acknowledgements.
func NewMarkNotificationReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgement command.
// Marking an already-read notification again is a no-op and succeeds.
func (h MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
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

	notificationRepo := uow.NotificationRepository()

	aggregate, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkRead(cmd.Caller()); err != nil {
		return err
	}

	if err = notificationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
