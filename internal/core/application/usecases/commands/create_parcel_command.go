package commands

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand represents a request to post a new parcel on the board.
// Detail validation (required contacts, cost range, defaults for pickup place
// and deadline) happens in the aggregate's Details constructor, so the
// command carries the raw values as the caller submitted them.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(
//	    kernel.NewUUID(), caller,
//	    "Sam", "9876543210", 50, false,
//	    "", "Hostel Block A", time.Time{},
//	)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	requester     kernel.Identity
	contactName   string
	contactNumber string
	cost          int
	paid          bool
	pickupPlace   string
	dropOffPlace  string
	deadline      time.Time

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to post a new parcel.
// Validates the parcel id and requester identity; the delivery details are
// validated later by the aggregate so their error messages stay in one place.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	requester kernel.Identity,
	contactName string,
	contactNumber string,
	cost int,
	paid bool,
	pickupPlace string,
	dropOffPlace string,
	deadline time.Time,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		contactName:   contactName,
		contactNumber: contactNumber,
		cost:          cost,
		paid:          paid,
		pickupPlace:   pickupPlace,
		dropOffPlace:  dropOffPlace,
		deadline:      deadline,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setRequester(requester),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Requester returns the identity posting the parcel.
func (c CreateParcelCommand) Requester() kernel.Identity {
	return c.requester
}

// ContactName returns the submitted contact person name.
func (c CreateParcelCommand) ContactName() string {
	return c.contactName
}

// ContactNumber returns the submitted contact phone number.
func (c CreateParcelCommand) ContactNumber() string {
	return c.contactNumber
}

// Cost returns the submitted delivery cost.
func (c CreateParcelCommand) Cost() int {
	return c.cost
}

// Paid reports whether the cost has already been paid.
func (c CreateParcelCommand) Paid() bool {
	return c.paid
}

// PickupPlace returns the submitted pickup place, possibly empty.
func (c CreateParcelCommand) PickupPlace() string {
	return c.pickupPlace
}

// DropOffPlace returns the submitted drop-off place.
func (c CreateParcelCommand) DropOffPlace() string {
	return c.dropOffPlace
}

// Deadline returns the submitted deadline, possibly zero.
func (c CreateParcelCommand) Deadline() time.Time {
	return c.deadline
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setRequester(requester kernel.Identity) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.requester = requester
	return nil
}
