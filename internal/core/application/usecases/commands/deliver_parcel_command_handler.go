package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/notification"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

// Confirmation messages returned to the caller after a committed transition.
const (
	confirmationClaimed   = "Delivery started"
	confirmationCancelled = "Delivery cancelled and set back to pending"
	confirmationCompleted = "Parcel marked as delivered"
)

// DeliverParcelResult reports the outcome of a committed lifecycle transition.
// Warnings carries notification delivery failures: the transition itself has
// already been committed and is never rolled back because a recipient could
// not be notified.
type DeliverParcelResult struct {
	Parcel       *parcel.Parcel
	Confirmation string
	Warnings     []error
}

// DeliverParcelCommandHandler orchestrates parcel lifecycle transitions.
// Applies authorization and state rules on the aggregate, persists the
// transition with a conditional write so concurrent callers cannot both
// succeed, and fans out notifications after the transaction commits.
//
// Example:
//
//	handler := NewDeliverParcelCommandHandler(uowFactory, notificationRepo, publisher, logger)
//	cmd, err := NewDeliverParcelCommand(parcelID, caller, parcel.ActionClaim)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Parcel does not exist")
//	case errors.Is(err, errs.ErrOperationForbidden):
//	    log.Println("Caller is not allowed to do that")
//	case errors.Is(err, errs.ErrStateConflict):
//	    log.Println("Someone else got there first")
//	case err != nil:
//	    log.Printf("Transition failed: %v", err)
//	default:
//	    log.Println(result.Confirmation)
//	}
type DeliverParcelCommandHandler struct {
	uowFactory    ParcelUoWFactory
	notifications ports.NotificationRepository
	composer      services.NotificationComposer
	publisher     ports.EventPublisher
	logger        *slog.Logger
}

// NewDeliverParcelCommandHandler creates a handler for parcel lifecycle transitions.
// publisher may be nil when no event broker is configured; events are then skipped.
func NewDeliverParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	notifications ports.NotificationRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeliverParcelCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return DeliverParcelCommandHandler{
		uowFactory:    uowFactory,
		notifications: notifications,
		composer:      services.NewNotificationComposer(),
		publisher:     publisher,
		logger:        logger,
	}
}

// Handle processes a lifecycle transition command.
// Loads the parcel, captures its pre-transition state, applies the requested
// action on the aggregate and persists it conditionally on the captured state.
// A concurrent transition surfaces as an error unwrapping to errs.ErrStateConflict.
// Notifications and lifecycle events are emitted only after the commit; their
// failures are collected into the result's Warnings, never returned as errors.
func (h DeliverParcelCommandHandler) Handle(
	ctx context.Context,
	command DeliverParcelCommand,
) (DeliverParcelResult, error) {
	if err := command.Validate(); err != nil {
		return DeliverParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeliverParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return DeliverParcelResult{}, err
	}

	// The pre-transition state doubles as the conditional-write expectation
	// and as the source of the deliverer a Cancel removes.
	prior := aggregate.Precondition()

	if err = h.applyAction(aggregate, command); err != nil {
		return DeliverParcelResult{}, err
	}

	drafts, err := h.composer.Compose(command.Action(), aggregate, prior, command.Caller())
	if err != nil {
		return DeliverParcelResult{}, err
	}

	if err = parcelRepo.UpdateConditional(ctx, aggregate, prior); err != nil {
		if errors.Is(err, ports.ErrPreconditionNotMatched) {
			return DeliverParcelResult{}, errs.NewStateConflictErrorWithCause(
				command.Action().String(), "parcel was modified concurrently", err)
		}
		return DeliverParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DeliverParcelResult{}, err
	}

	result := DeliverParcelResult{
		Parcel:       aggregate,
		Confirmation: confirmationFor(command.Action()),
		Warnings:     h.deliverNotifications(ctx, aggregate, command, drafts),
	}

	h.publishEvent(ctx, aggregate, command)

	return result, nil
}

func (h DeliverParcelCommandHandler) applyAction(
	aggregate *parcel.Parcel,
	command DeliverParcelCommand,
) error {
	switch command.Action() {
	case parcel.ActionClaim:
		return aggregate.Claim(command.Caller())
	case parcel.ActionCancel:
		return aggregate.Cancel(command.Caller())
	case parcel.ActionComplete:
		return aggregate.Complete(command.Caller())
	default:
		return command.Action().Validate()
	}
}

// deliverNotifications appends each draft after the transition has been
// committed. Failures do not abort the remaining drafts.
func (h DeliverParcelCommandHandler) deliverNotifications(
	ctx context.Context,
	aggregate *parcel.Parcel,
	command DeliverParcelCommand,
	drafts []services.NotificationDraft,
) []error {
	var warnings []error

	for _, draft := range drafts {
		entity, err := notification.NewNotification(
			kernel.NewUUID(),
			draft.Recipient,
			draft.Message,
			aggregate.ID(),
			command.Caller(),
			time.Now().UTC(),
		)
		if err == nil {
			err = h.notifications.Add(ctx, entity)
		}
		if err != nil {
			h.logger.Warn("notification delivery failed",
				"parcel_id", aggregate.ID().String(),
				"recipient", draft.Recipient.String(),
				"error", err)
			warnings = append(warnings, err)
		}
	}

	return warnings
}

func (h DeliverParcelCommandHandler) publishEvent(
	ctx context.Context,
	aggregate *parcel.Parcel,
	command DeliverParcelCommand,
) {
	if h.publisher == nil {
		return
	}

	event := ports.DeliveryEvent{
		ParcelID:   aggregate.ID().String(),
		Action:     command.Action().String(),
		Actor:      command.Caller().String(),
		Status:     aggregate.Status().String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := h.publisher.PublishDeliveryEvent(ctx, event); err != nil {
		h.logger.Warn("delivery event publish failed",
			"parcel_id", event.ParcelID,
			"action", event.Action,
			"error", err)
	}
}

func confirmationFor(action parcel.Action) string {
	switch action {
	case parcel.ActionCancel:
		return confirmationCancelled
	case parcel.ActionComplete:
		return confirmationCompleted
	default:
		return confirmationClaimed
	}
}
