package commands

import (
	"errors"
	"time"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/pkg/guard"
)

var ErrCreateRentalCommandIsNotConstructed = errors.New(
	"CreateRentalCommand must be created via NewCreateRentalCommand constructor",
)

// CreateRentalCommand represents a request to open a rental contract between
// a rider and a motorcycle over a billing plan.
//
// Example:
//
//	riderID, _ := kernel.NewID("rider123")
//	motoID, _ := kernel.NewID("moto123")
//	plan, _ := rental.ParsePlan(7)
//	cmd, err := NewCreateRentalCommand(riderID, motoID, start, end, expectedEnd, plan)
//	if err != nil {
//	    return fmt.Errorf("invalid rental data: %w", err)
//	}
//
//	handler := NewCreateRentalCommandHandler(uowFactory, clock)
//	identifier, err := handler.Handle(ctx, cmd)
type CreateRentalCommand struct { //nolint:recvcheck //using for validation
	riderID      kernel.ID
	motorcycleID kernel.ID
	start        time.Time
	end          time.Time
	expectedEnd  time.Time
	plan         rental.Plan

	guard guard.ConstructorGuard
}

// NewCreateRentalCommand creates a command to open a rental. Date ordering is
// validated by the aggregate; the command checks the references and the plan.
func NewCreateRentalCommand(
	riderID kernel.ID,
	motorcycleID kernel.ID,
	start time.Time,
	end time.Time,
	expectedEnd time.Time,
	plan rental.Plan,
) (CreateRentalCommand, error) {
	cmd := CreateRentalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setMotorcycleID(motorcycleID),
		cmd.setPlan(plan),
	); err != nil {
		return CreateRentalCommand{}, err
	}

	cmd.start = start
	cmd.end = end
	cmd.expectedEnd = expectedEnd
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRentalCommand) Validate() error {
	return c.guard.Validate(ErrCreateRentalCommandIsNotConstructed)
}

// RiderID returns the renting rider's identifier.
func (c CreateRentalCommand) RiderID() kernel.ID {
	return c.riderID
}

// MotorcycleID returns the rented unit's identifier.
func (c CreateRentalCommand) MotorcycleID() kernel.ID {
	return c.motorcycleID
}

// Start returns the contract start instant.
func (c CreateRentalCommand) Start() time.Time {
	return c.start
}

// End returns the assumed return instant.
func (c CreateRentalCommand) End() time.Time {
	return c.end
}

// ExpectedEnd returns the committed return date.
func (c CreateRentalCommand) ExpectedEnd() time.Time {
	return c.expectedEnd
}

// Plan returns the billing tier.
func (c CreateRentalCommand) Plan() rental.Plan {
	return c.plan
}

func (c *CreateRentalCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *CreateRentalCommand) setMotorcycleID(motorcycleID kernel.ID) error {
	if err := motorcycleID.Validate(); err != nil {
		return err
	}

	c.motorcycleID = motorcycleID
	return nil
}

func (c *CreateRentalCommand) setPlan(plan rental.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	c.plan = plan
	return nil
}
