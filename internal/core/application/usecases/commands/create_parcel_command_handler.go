package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for posting parcels.
// New parcels start in the pending state and immediately show up on the
// board for other members to claim.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	cmd, _ := NewCreateParcelCommand(
//	    kernel.NewUUID(), caller,
//	    "Sam", "9876543210", 50, false,
//	    "", "Hostel Block A", time.Time{},
//	)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to post parcel: %w", err)
//	}
//	fmt.Printf("Parcel %s posted", created.ID())
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel posting operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel posting command.
// Builds the delivery details (applying defaults for pickup place and
// deadline), creates the aggregate in pending state and persists it.
// Returns the created aggregate so the caller can render it.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context,
	cmd CreateParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	details, err := parcel.NewDetails(
		cmd.ContactName(),
		cmd.ContactNumber(),
		cmd.Cost(),
		cmd.Paid(),
		cmd.PickupPlace(),
		cmd.DropOffPlace(),
		cmd.Deadline(),
	)
	if err != nil {
		return nil, err
	}

	aggregate, err := parcel.NewParcel(cmd.ParcelID(), cmd.Requester(), details)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
