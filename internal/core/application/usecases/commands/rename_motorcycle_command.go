package commands

import (
	"errors"
	"strings"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

var ErrRenameMotorcycleCommandIsNotConstructed = errors.New(
	"RenameMotorcycleCommand must be created via NewRenameMotorcycleCommand constructor",
)

// RenameMotorcycleCommand represents a request to change a unit's model name.
type RenameMotorcycleCommand struct { //nolint:recvcheck //using for validation
	motorcycleID kernel.ID
	model        string

	guard guard.ConstructorGuard
}

// NewRenameMotorcycleCommand creates a command to rename a motorcycle.
func NewRenameMotorcycleCommand(motorcycleID kernel.ID, model string) (RenameMotorcycleCommand, error) {
	cmd := RenameMotorcycleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMotorcycleID(motorcycleID),
		cmd.setModel(model),
	); err != nil {
		return RenameMotorcycleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameMotorcycleCommand) Validate() error {
	return c.guard.Validate(ErrRenameMotorcycleCommandIsNotConstructed)
}

// MotorcycleID returns the unit's identifier.
func (c RenameMotorcycleCommand) MotorcycleID() kernel.ID {
	return c.motorcycleID
}

// Model returns the new model name.
func (c RenameMotorcycleCommand) Model() string {
	return c.model
}

func (c *RenameMotorcycleCommand) setMotorcycleID(motorcycleID kernel.ID) error {
	if err := motorcycleID.Validate(); err != nil {
		return err
	}

	c.motorcycleID = motorcycleID
	return nil
}

func (c *RenameMotorcycleCommand) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}
