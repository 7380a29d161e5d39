package commands_test

import (
	"errors"
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand(t *testing.T) {
	parcelID := kernel.NewUUID()
	owner := requester(t)

	cmd, err := commands.NewCreateParcelCommand(
		parcelID, owner, "Sam", "9876543210", 50, true, "Main gate", "Block A", time.Time{})

	require.NoError(t, err)
	assert.True(t, parcelID.IsEqual(cmd.ParcelID()))
	assert.True(t, owner.IsEqual(cmd.Requester()))
	assert.Equal(t, "Sam", cmd.ContactName())
	assert.Equal(t, "9876543210", cmd.ContactNumber())
	assert.Equal(t, 50, cmd.Cost())
	assert.True(t, cmd.Paid())
	assert.Equal(t, "Main gate", cmd.PickupPlace())
	assert.Equal(t, "Block A", cmd.DropOffPlace())
	assert.True(t, cmd.Deadline().IsZero())
}

func TestNewCreateParcelCommand_InvalidRequester(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.Identity{}, "Sam", "9876543210", 50, false, "", "Block A", time.Time{})

	require.Error(t, err)
}

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := requester(t)
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		parcelID, owner, "Sam", "9876543210", 50, false, "", "Block A", time.Time{})
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, parcelID.IsEqual(created.ID()))
	assert.Equal(t, parcel.StatusPending, created.Status())
	assert.Nil(t, created.Deliverer())

	// Defaults applied for the omitted pickup place and deadline.
	assert.Equal(t, parcel.DefaultPickupPlace, created.Details().PickupPlace())
	assert.False(t, created.Details().Deadline().IsZero())

	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_InvalidDetails(t *testing.T) {
	ctx := t.Context()
	owner := requester(t)

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), owner, "", "", -1, false, "", "", time.Time{})
	require.NoError(t, err)

	factory := new(MockParcelUoWFactory)

	handler := commands.NewCreateParcelCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateParcelCommand{} // not constructed properly

	factory := new(MockParcelUoWFactory)
	handler := commands.NewCreateParcelCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateParcelCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	owner := requester(t)

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), owner, "Sam", "9876543210", 50, false, "", "Block A", time.Time{})
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).
			Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
