package feedback_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/domain/model/feedback"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(t *testing.T, raw string) kernel.Identity {
	t.Helper()
	id, err := kernel.NewIdentity(raw)
	require.NoError(t, err)
	return id
}

func TestNewFeedback(t *testing.T) {
	t.Run("creates a feedback entry", func(t *testing.T) {
		now := time.Now().UTC()
		id := kernel.NewUUID()

		f, err := feedback.NewFeedback(id, identity(t, "alice@x"), "Great service", now)

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.True(t, f.ID().IsEqual(id))
		assert.True(t, f.Author().IsEqual(identity(t, "alice@x")))
		assert.Equal(t, "Great service", f.Text())
		assert.Equal(t, now, f.CreatedAt())
	})

	t.Run("rejects empty text", func(t *testing.T) {
		f, err := feedback.NewFeedback(kernel.NewUUID(), identity(t, "alice@x"), "", time.Now())

		require.Error(t, err)
		assert.Nil(t, f)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero author", func(t *testing.T) {
		var nobody kernel.Identity

		f, err := feedback.NewFeedback(kernel.NewUUID(), nobody, "hello", time.Now())

		require.Error(t, err)
		assert.Nil(t, f)
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		f, err := feedback.NewFeedback(kernel.NewUUID(), identity(t, "alice@x"), "hello", time.Time{})

		require.Error(t, err)
		assert.Nil(t, f)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		var zero kernel.UUID

		f, err := feedback.NewFeedback(zero, identity(t, "alice@x"), "hello", time.Now())

		require.Error(t, err)
		assert.Nil(t, f)
	})
}

func TestRestoreFeedback(t *testing.T) {
	now := time.Now().UTC()
	id := kernel.NewUUID()

	f, err := feedback.RestoreFeedback(id, identity(t, "alice@x"), "Great service", now)

	require.NoError(t, err)
	require.NoError(t, f.Validate())
	assert.Equal(t, "Great service", f.Text())
}

func TestFeedbackValidate(t *testing.T) {
	t.Run("rejects zero value", func(t *testing.T) {
		var f feedback.Feedback
		assert.ErrorIs(t, f.Validate(), feedback.ErrFeedbackIsNotConstructed)
	})

	t.Run("rejects nil", func(t *testing.T) {
		var f *feedback.Feedback
		assert.ErrorIs(t, f.Validate(), feedback.ErrFeedbackIsNotConstructed)
	})
}
