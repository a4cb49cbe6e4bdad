package commands

import (
	"errors"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/pkg/guard"
)

var ErrChangeMotorcyclePlateCommandIsNotConstructed = errors.New(
	"ChangeMotorcyclePlateCommand must be created via NewChangeMotorcyclePlateCommand constructor",
)

// ChangeMotorcyclePlateCommand represents a request to replace a unit's
// plate. The raw plate is normalized and pattern-checked at construction.
type ChangeMotorcyclePlateCommand struct { //nolint:recvcheck //using for validation
	motorcycleID kernel.ID
	plate        motorcycle.Plate

	guard guard.ConstructorGuard
}

// NewChangeMotorcyclePlateCommand creates a command to change a motorcycle's plate.
func NewChangeMotorcyclePlateCommand(
	motorcycleID kernel.ID, rawPlate string,
) (ChangeMotorcyclePlateCommand, error) {
	cmd := ChangeMotorcyclePlateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMotorcycleID(motorcycleID),
		cmd.setPlate(rawPlate),
	); err != nil {
		return ChangeMotorcyclePlateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeMotorcyclePlateCommand) Validate() error {
	return c.guard.Validate(ErrChangeMotorcyclePlateCommandIsNotConstructed)
}

// MotorcycleID returns the unit's identifier.
func (c ChangeMotorcyclePlateCommand) MotorcycleID() kernel.ID {
	return c.motorcycleID
}

// Plate returns the normalized, validated replacement plate.
func (c ChangeMotorcyclePlateCommand) Plate() motorcycle.Plate {
	return c.plate
}

func (c *ChangeMotorcyclePlateCommand) setMotorcycleID(motorcycleID kernel.ID) error {
	if err := motorcycleID.Validate(); err != nil {
		return err
	}

	c.motorcycleID = motorcycleID
	return nil
}

func (c *ChangeMotorcyclePlateCommand) setPlate(rawPlate string) error {
	plate, err := motorcycle.NewPlate(rawPlate)
	if err != nil {
		return err
	}

	c.plate = plate
	return nil
}
