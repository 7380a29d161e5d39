package services

import (
	"fmt"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
)

// NotificationDraft is a composed message addressed to a single recipient.
// Drafts are turned into Notification entities by the command handlers; the
// composer itself produces no side effects.
type NotificationDraft struct {
	Recipient kernel.Identity
	Message   string
}

// NotificationComposer is a domain service that derives the notifications a
// successful lifecycle transition must emit. It exists as a separable unit so
// message wording can change without touching authorization or state logic.
//
// Per transition:
//   - Claim: one message to the requester, one to the new deliverer
//   - Cancel: one message to the deliverer whose acceptance was withdrawn
//   - Complete: one message to the deliverer being thanked
//
// The composer never emits a draft to an empty recipient: a Cancel or
// Complete against a parcel whose deliverer is unexpectedly absent is an
// inconsistent-state condition and is reported as a conflict.
type NotificationComposer struct{}

// NewNotificationComposer creates a new NotificationComposer instance.
func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

// Compose returns the notification drafts for a transition that has just been
// applied to p. prior is the parcel's lifecycle state captured before the
// transition; it supplies the deliverer a Cancel removed. actor is the caller
// who triggered the transition.
//
// Returns an error unwrapping to errs.ErrValueIsInvalid for an invalid
// action and errs.ErrStateConflict when the required recipient is missing.
func (c NotificationComposer) Compose(
	action parcel.Action,
	p *parcel.Parcel,
	prior parcel.Precondition,
	actor kernel.Identity,
) ([]NotificationDraft, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	switch action {
	case parcel.ActionClaim:
		return []NotificationDraft{
			{
				Recipient: p.Requester(),
				Message:   fmt.Sprintf("Congrats! %s has accepted your parcel.", actor),
			},
			{
				Recipient: actor,
				Message: fmt.Sprintf(
					"You need to contact %s (%s) to know the pickup place and delivery details.",
					p.Details().ContactName(), p.Details().ContactNumber(),
				),
			},
		}, nil

	case parcel.ActionCancel:
		if prior.Deliverer == nil {
			return nil, errs.NewStateConflictError("cancel", "parcel has no deliverer to notify")
		}
		return []NotificationDraft{
			{
				Recipient: *prior.Deliverer,
				Message: fmt.Sprintf(
					"The owner (%s) has cancelled your acceptance of the parcel. Thank you for your time!",
					p.Requester(),
				),
			},
		}, nil

	case parcel.ActionComplete:
		if p.Deliverer() == nil {
			return nil, errs.NewStateConflictError("complete", "parcel has no deliverer to notify")
		}
		return []NotificationDraft{
			{
				Recipient: *p.Deliverer(),
				Message: fmt.Sprintf(
					"Thank you for your delivery of parcel (%s). We appreciate your help!",
					p.ID(),
				),
			},
		}, nil

	default:
		return nil, errs.NewValueIsInvalidError("action is invalid")
	}
}

// ComposeOverdueReminder returns the draft for the overdue reminder sent to
// the requester of a still-pending parcel whose deadline has passed.
func (c NotificationComposer) ComposeOverdueReminder(p *parcel.Parcel) (NotificationDraft, error) {
	if err := p.Validate(); err != nil {
		return NotificationDraft{}, err
	}

	return NotificationDraft{
		Recipient: p.Requester(),
		Message: fmt.Sprintf(
			"Your parcel (%s) was not claimed before its deadline. You may want to update or repost it.",
			p.ID(),
		),
	}, nil
}
