package commands_test

import (
	"context"
	"errors"
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/feedback"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFeedbackRepository struct{ mock.Mock }

func (m *MockFeedbackRepository) Add(ctx context.Context, f *feedback.Feedback) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

type MockFeedbackUoW struct{ mock.Mock }

func (m *MockFeedbackUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFeedbackUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFeedbackUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFeedbackUoW) FeedbackRepository() ports.FeedbackRepository {
	args := m.Called()
	return args.Get(0).(ports.FeedbackRepository)
}

type MockFeedbackUoWFactory struct{ mock.Mock }

func (m *MockFeedbackUoWFactory) Create() commands.FeedbackUoW {
	args := m.Called()
	return args.Get(0).(commands.FeedbackUoW)
}

func TestNewSubmitFeedbackCommand_TrimsText(t *testing.T) {
	author := requester(t)

	cmd, err := commands.NewSubmitFeedbackCommand(
		kernel.NewUUID(), author, "  great service  ")

	require.NoError(t, err)
	assert.Equal(t, "great service", cmd.Text())
}

func TestNewSubmitFeedbackCommand_BlankText(t *testing.T) {
	author := requester(t)

	_, err := commands.NewSubmitFeedbackCommand(kernel.NewUUID(), author, "   ")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSubmitFeedbackCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	author := requester(t)
	feedbackID := kernel.NewUUID()

	cmd, err := commands.NewSubmitFeedbackCommand(feedbackID, author, "great service")
	require.NoError(t, err)

	feedbackRepo := new(MockFeedbackRepository)
	uow := new(MockFeedbackUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FeedbackRepository").Return(feedbackRepo).Once(),
		feedbackRepo.On("Add", ctx, mock.AnythingOfType("*feedback.Feedback")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFeedbackUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitFeedbackCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	stored := feedbackRepo.Calls[0].Arguments[1].(*feedback.Feedback)
	assert.True(t, feedbackID.IsEqual(stored.ID()))
	assert.True(t, author.IsEqual(stored.Author()))
	assert.Equal(t, "great service", stored.Text())
	assert.False(t, stored.CreatedAt().IsZero())

	feedbackRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitFeedbackCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	author := requester(t)

	cmd, err := commands.NewSubmitFeedbackCommand(kernel.NewUUID(), author, "great service")
	require.NoError(t, err)

	feedbackRepo := new(MockFeedbackRepository)
	uow := new(MockFeedbackUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FeedbackRepository").Return(feedbackRepo).Once(),
		feedbackRepo.On("Add", ctx, mock.AnythingOfType("*feedback.Feedback")).
			Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFeedbackUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitFeedbackCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitFeedbackCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitFeedbackCommand{} // not constructed properly

	factory := new(MockFeedbackUoWFactory)
	handler := commands.NewSubmitFeedbackCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSubmitFeedbackCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
