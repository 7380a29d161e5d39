package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := requester(t)
	testParcel := pendingParcel(t, owner)

	cmd, err := commands.NewDeleteParcelCommand(testParcel.ID(), owner)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		parcelRepo.On("Delete", ctx, testParcel.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteParcelCommandHandler_Handle_NotOwnerReportsNotFound(t *testing.T) {
	ctx := t.Context()
	owner := requester(t)
	other := deliverer(t)
	testParcel := pendingParcel(t, owner)

	cmd, err := commands.NewDeleteParcelCommand(testParcel.ID(), other)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	parcelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteParcelCommandHandler_Handle_NonPendingConflict(t *testing.T) {
	ctx := t.Context()
	owner := requester(t)
	helper := deliverer(t)
	testParcel := inProgressParcel(t, owner, helper)

	cmd, err := commands.NewDeleteParcelCommand(testParcel.ID(), owner)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	parcelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteParcelCommandHandler_Handle_UnknownParcel(t *testing.T) {
	ctx := t.Context()
	owner := requester(t)
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewDeleteParcelCommand(parcelID, owner)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, parcelID).
			Return(nil, errs.NewObjectNotFoundError("parcelID", parcelID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteParcelCommand{} // not constructed properly

	factory := new(MockParcelUoWFactory)
	handler := commands.NewDeleteParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeleteParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteParcelCommandHandler_Handle_DeliveredConflict(t *testing.T) {
	ctx := t.Context()
	owner := requester(t)
	helper := deliverer(t)
	testParcel := inProgressParcel(t, owner, helper)
	require.NoError(t, testParcel.Complete(owner))
	require.Equal(t, parcel.StatusDelivered, testParcel.Status())

	cmd, err := commands.NewDeleteParcelCommand(testParcel.ID(), owner)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockParcelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
}
