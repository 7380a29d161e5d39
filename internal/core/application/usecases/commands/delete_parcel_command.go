package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrDeleteParcelCommandIsNotConstructed = errors.New(
		"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
	)
)

// DeleteParcelCommand represents a requester withdrawing their own
// still-pending parcel from the board.
type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	caller   kernel.Identity

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates a command to withdraw a parcel.
// Validates the parcel id and caller identity.
func NewDeleteParcelCommand(
	parcelID kernel.UUID,
	caller kernel.Identity,
) (DeleteParcelCommand, error) {
	cmd := DeleteParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCaller(caller),
	); err != nil {
		return DeleteParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteParcelCommandIsNotConstructed if validation fails.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier of the parcel to withdraw.
func (c DeleteParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Caller returns the identity requesting the withdrawal.
func (c DeleteParcelCommand) Caller() kernel.Identity {
	return c.caller
}

func (c *DeleteParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *DeleteParcelCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
