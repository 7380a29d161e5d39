package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrDeliverParcelCommandIsNotConstructed = errors.New(
		"DeliverParcelCommand must be created via NewDeliverParcelCommand constructor",
	)
)

// DeliverParcelCommand represents a caller's request to transition a parcel
// through its delivery lifecycle: claim it, cancel the current acceptance,
// or confirm completion. The caller identity is resolved at the boundary and
// threaded in explicitly; it is never ambient state.
//
// Example:
//
//	action, err := parcel.ParseAction("claim")
//	if err != nil {
//	    return err // InvalidArgument at the boundary
//	}
//	cmd, err := NewDeliverParcelCommand(parcelID, caller, action)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type DeliverParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	caller   kernel.Identity
	action   parcel.Action

	guard guard.ConstructorGuard
}

// NewDeliverParcelCommand creates a command to transition a parcel's delivery
// lifecycle. Validates that the parcel id, caller identity and action are all
// well-formed. Returns an error if any validation fails.
func NewDeliverParcelCommand(
	parcelID kernel.UUID,
	caller kernel.Identity,
	action parcel.Action,
) (DeliverParcelCommand, error) {
	cmd := DeliverParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCaller(caller),
		cmd.setAction(action),
	); err != nil {
		return DeliverParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverParcelCommandIsNotConstructed if validation fails.
func (c DeliverParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeliverParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier of the parcel to transition.
func (c DeliverParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Caller returns the resolved identity of the member requesting the transition.
func (c DeliverParcelCommand) Caller() kernel.Identity {
	return c.caller
}

// Action returns the requested lifecycle transition.
func (c DeliverParcelCommand) Action() parcel.Action {
	return c.action
}

func (c *DeliverParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *DeliverParcelCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *DeliverParcelCommand) setAction(action parcel.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}
