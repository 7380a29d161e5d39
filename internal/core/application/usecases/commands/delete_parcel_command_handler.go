package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
)

// DeleteParcelCommandHandler handles withdrawal of posted parcels.
// A parcel that belongs to someone else is reported as not found rather
// than forbidden, so callers cannot probe for other members' parcel ids.
// Parcels past the pending state cannot be withdrawn.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel withdrawal operations.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command.
// Returns an error unwrapping to errs.ErrObjectNotFound when the parcel
// does not exist or is owned by someone else, and to errs.ErrStateConflict
// when the parcel is no longer pending.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if !aggregate.Requester().IsEqual(cmd.Caller()) {
		return errs.NewObjectNotFoundError("parcelID", cmd.ParcelID())
	}

	if aggregate.Status() != parcel.StatusPending {
		return errs.NewStateConflictError("delete", "parcel is no longer pending")
	}

	if err = parcelRepo.Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
