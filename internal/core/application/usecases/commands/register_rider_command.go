package commands

import (
	"errors"
	"strings"
	"time"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rider"
	"rentmoto/internal/pkg/errs"
	"rentmoto/internal/pkg/guard"
)

var ErrRegisterRiderCommandIsNotConstructed = errors.New(
	"RegisterRiderCommand must be created via NewRegisterRiderCommand constructor",
)

// RegisterRiderCommand represents a request to register a delivery rider.
// The license credential is built at the HTTP edge and carried as a value;
// CNPJ normalization happens inside the aggregate.
//
// Example:
//
//	id, _ := kernel.NewID("rider123")
//	cnh, _ := rider.NewCNH(rider.CNHTypeA, "12345678900", "")
//	cmd, err := NewRegisterRiderCommand(id, "12.345.678/0001-99", "Joao Silva", birthDate, cnh)
//	if err != nil {
//	    return fmt.Errorf("invalid rider data: %w", err)
//	}
type RegisterRiderCommand struct { //nolint:recvcheck //using for validation
	riderID   kernel.ID
	cnpj      string
	name      string
	birthDate time.Time
	cnh       rider.CNH

	guard guard.ConstructorGuard
}

// NewRegisterRiderCommand creates a command to register a rider.
func NewRegisterRiderCommand(
	riderID kernel.ID, cnpj string, name string, birthDate time.Time, cnh rider.CNH,
) (RegisterRiderCommand, error) {
	cmd := RegisterRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setCNPJ(cnpj),
		cmd.setName(name),
		cmd.setCNH(cnh),
	); err != nil {
		return RegisterRiderCommand{}, err
	}

	cmd.birthDate = birthDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRiderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRiderCommandIsNotConstructed)
}

// RiderID returns the unique identifier for the new rider.
func (c RegisterRiderCommand) RiderID() kernel.ID {
	return c.riderID
}

// CNPJ returns the raw registration number as supplied by the caller.
func (c RegisterRiderCommand) CNPJ() string {
	return c.cnpj
}

// Name returns the rider's display name.
func (c RegisterRiderCommand) Name() string {
	return c.name
}

// BirthDate returns the rider's date of birth.
func (c RegisterRiderCommand) BirthDate() time.Time {
	return c.birthDate
}

// CNH returns the license credential.
func (c RegisterRiderCommand) CNH() rider.CNH {
	return c.cnh
}

func (c *RegisterRiderCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *RegisterRiderCommand) setCNPJ(cnpj string) error {
	if strings.TrimSpace(cnpj) == "" {
		return errs.NewValueIsRequiredError("cnpj")
	}

	c.cnpj = cnpj
	return nil
}

func (c *RegisterRiderCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterRiderCommand) setCNH(cnh rider.CNH) error {
	if err := cnh.Validate(); err != nil {
		return err
	}

	c.cnh = cnh
	return nil
}
