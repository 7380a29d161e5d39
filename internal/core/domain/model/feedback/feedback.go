// Package feedback provides the Feedback entity for the community feedback
// board. Feedback is simple append-only content with no lifecycle.
package feedback

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// ErrFeedbackIsNotConstructed is returned when a Feedback instance was not
// created through NewFeedback or RestoreFeedback.
var ErrFeedbackIsNotConstructed = errors.New(
	"Feedback must be created via NewFeedback or RestoreFeedback",
)

// Feedback is a free-text note a member leaves on the community board.
type Feedback struct {
	id        kernel.UUID
	author    kernel.Identity
	text      string
	createdAt time.Time

	isConstructed bool
}

// NewFeedback creates a feedback entry with validation.
func NewFeedback(id kernel.UUID, author kernel.Identity, text string, createdAt time.Time) (*Feedback, error) {
	f := &Feedback{
		isConstructed: true,
	}

	if err := errors.Join(
		f.setID(id),
		f.setAuthor(author),
		f.setText(text),
		f.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFeedback reconstructs a feedback entry from persistence.
func RestoreFeedback(id kernel.UUID, author kernel.Identity, text string, createdAt time.Time) (*Feedback, error) {
	return NewFeedback(id, author, text, createdAt)
}

// Validate ensures the Feedback was created through a factory method.
func (f *Feedback) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFeedbackIsNotConstructed
	}
	return nil
}

// ID returns the feedback's unique identifier.
func (f *Feedback) ID() kernel.UUID {
	return f.id
}

// Author returns the identity of the member who left the feedback.
func (f *Feedback) Author() kernel.Identity {
	return f.author
}

// Text returns the feedback content.
func (f *Feedback) Text() string {
	return f.text
}

// CreatedAt returns the creation timestamp.
func (f *Feedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Feedback) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Feedback) setAuthor(author kernel.Identity) error {
	if err := author.Validate(); err != nil {
		return err
	}
	f.author = author
	return nil
}

func (f *Feedback) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	f.text = text
	return nil
}

func (f *Feedback) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	f.createdAt = createdAt
	return nil
}
