package commands

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
		"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
	)
)

// SubmitFeedbackCommand represents a member posting feedback to the
// community board.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	feedbackID kernel.UUID
	author     kernel.Identity
	text       string

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand creates a command to post feedback.
// Validates the feedback id, author identity and that the text is not blank.
func NewSubmitFeedbackCommand(
	feedbackID kernel.UUID,
	author kernel.Identity,
	text string,
) (SubmitFeedbackCommand, error) {
	cmd := SubmitFeedbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFeedbackID(feedbackID),
		cmd.setAuthor(author),
		cmd.setText(text),
	); err != nil {
		return SubmitFeedbackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitFeedbackCommandIsNotConstructed if validation fails.
func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

// FeedbackID returns the unique identifier for the feedback entry.
func (c SubmitFeedbackCommand) FeedbackID() kernel.UUID {
	return c.feedbackID
}

// Author returns the identity posting the feedback.
func (c SubmitFeedbackCommand) Author() kernel.Identity {
	return c.author
}

// Text returns the feedback text.
func (c SubmitFeedbackCommand) Text() string {
	return c.text
}

func (c *SubmitFeedbackCommand) setFeedbackID(feedbackID kernel.UUID) error {
	if err := feedbackID.Validate(); err != nil {
		return err
	}
	c.feedbackID = feedbackID
	return nil
}

func (c *SubmitFeedbackCommand) setAuthor(author kernel.Identity) error {
	if err := author.Validate(); err != nil {
		return err
	}
	c.author = author
	return nil
}

func (c *SubmitFeedbackCommand) setText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("text")
	}
	c.text = trimmed
	return nil
}
