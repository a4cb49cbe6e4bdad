package commands

import (
	"errors"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/pkg/guard"
)

var ErrDeleteMotorcycleCommandIsNotConstructed = errors.New(
	"DeleteMotorcycleCommand must be created via NewDeleteMotorcycleCommand constructor",
)

// DeleteMotorcycleCommand represents a request to remove a unit from the fleet.
type DeleteMotorcycleCommand struct { //nolint:recvcheck //using for validation
	motorcycleID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteMotorcycleCommand creates a command to delete a motorcycle.
func NewDeleteMotorcycleCommand(motorcycleID kernel.ID) (DeleteMotorcycleCommand, error) {
	cmd := DeleteMotorcycleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMotorcycleID(motorcycleID); err != nil {
		return DeleteMotorcycleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMotorcycleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMotorcycleCommandIsNotConstructed)
}

// MotorcycleID returns the unit's identifier.
func (c DeleteMotorcycleCommand) MotorcycleID() kernel.ID {
	return c.motorcycleID
}

func (c *DeleteMotorcycleCommand) setMotorcycleID(motorcycleID kernel.ID) error {
	if err := motorcycleID.Validate(); err != nil {
		return err
	}

	c.motorcycleID = motorcycleID
	return nil
}
