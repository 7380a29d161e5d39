package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/feedback"
)

// SubmitFeedbackCommandHandler handles posting feedback to the community board.
type SubmitFeedbackCommandHandler struct {
	uowFactory FeedbackUoWFactory
}

// NewSubmitFeedbackCommandHandler creates a handler for feedback submissions.
func NewSubmitFeedbackCommandHandler(uowFactory FeedbackUoWFactory) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the feedback submission command.
func (h SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := feedback.NewFeedback(cmd.FeedbackID(), cmd.Author(), cmd.Text(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.FeedbackRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
