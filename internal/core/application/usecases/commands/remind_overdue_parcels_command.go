package commands

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

// RemindOverdueParcelsCommand triggers reminders for pending parcels whose
// deadline has passed. Each overdue parcel is reminded at most once.
//
// Example:
//
//	cmd := NewRemindOverdueParcelsCommand()
//	handler := NewRemindOverdueParcelsCommandHandler(uowFactory, logger)
//
//	// Run periodically from the job scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Reminder sweep failed: %v", err)
//	}
type RemindOverdueParcelsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrRemindOverdueParcelsCommandIsNotConstructed = errors.New(
		"RemindOverdueParcelsCommand must be created via NewRemindOverdueParcelsCommand constructor",
	)
)

// NewRemindOverdueParcelsCommand creates a command to sweep overdue parcels.
// This is a parameterless command that processes every overdue pending parcel.
func NewRemindOverdueParcelsCommand() RemindOverdueParcelsCommand {
	command := RemindOverdueParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemindOverdueParcelsCommandIsNotConstructed if validation fails.
func (c *RemindOverdueParcelsCommand) Validate() error {
	return c.guard.Validate(ErrRemindOverdueParcelsCommandIsNotConstructed)
}
