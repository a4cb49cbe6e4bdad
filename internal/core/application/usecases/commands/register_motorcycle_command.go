package commands

import (
	"errors"
	"strings"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

var ErrRegisterMotorcycleCommandIsNotConstructed = errors.New(
	"RegisterMotorcycleCommand must be created via NewRegisterMotorcycleCommand constructor",
)

// RegisterMotorcycleCommand represents a request to add a new unit to the
// fleet. The raw plate is normalized and pattern-checked at construction, so
// a constructed command always carries a well-formed plate.
//
// Example:
//
//	id, _ := kernel.NewID("moto123")
//	cmd, err := NewRegisterMotorcycleCommand(id, 2024, "Mottu Sport", "abc-1d23")
//	if err != nil {
//	    return fmt.Errorf("invalid motorcycle data: %w", err)
//	}
//
//	handler := NewRegisterMotorcycleCommandHandler(uowFactory, clock, publisher, topic)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register motorcycle: %w", err)
//	}
type RegisterMotorcycleCommand struct { //nolint:recvcheck //using for validation
	motorcycleID kernel.ID
	year         int
	model        string
	plate        motorcycle.Plate

	guard guard.ConstructorGuard
}

// NewRegisterMotorcycleCommand creates a command to register a motorcycle.
// Validates the id, the model, and the plate format; the year range is
// checked by the aggregate since it depends on the current instant.
func NewRegisterMotorcycleCommand(
	motorcycleID kernel.ID, year int, model string, rawPlate string,
) (RegisterMotorcycleCommand, error) {
	cmd := RegisterMotorcycleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMotorcycleID(motorcycleID),
		cmd.setModel(model),
		cmd.setPlate(rawPlate),
	); err != nil {
		return RegisterMotorcycleCommand{}, err
	}

	cmd.year = year
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterMotorcycleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMotorcycleCommandIsNotConstructed)
}

// MotorcycleID returns the unique identifier for the new unit.
func (c RegisterMotorcycleCommand) MotorcycleID() kernel.ID {
	return c.motorcycleID
}

// Year returns the model year.
func (c RegisterMotorcycleCommand) Year() int {
	return c.year
}

// Model returns the model name.
func (c RegisterMotorcycleCommand) Model() string {
	return c.model
}

// Plate returns the normalized, validated plate.
func (c RegisterMotorcycleCommand) Plate() motorcycle.Plate {
	return c.plate
}

func (c *RegisterMotorcycleCommand) setMotorcycleID(motorcycleID kernel.ID) error {
	if err := motorcycleID.Validate(); err != nil {
		return err
	}

	c.motorcycleID = motorcycleID
	return nil
}

func (c *RegisterMotorcycleCommand) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}

func (c *RegisterMotorcycleCommand) setPlate(rawPlate string) error {
	plate, err := motorcycle.NewPlate(rawPlate)
	if err != nil {
		return err
	}

	c.plate = plate
	return nil
}
