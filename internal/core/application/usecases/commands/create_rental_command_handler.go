package commands

import (
	"context"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/services"
)

// CreateRentalCommandHandler is the single entry point for opening rentals.
// The rider is loaded with its rental history inside the transaction, so the
// single-open-rental invariant is enforced against persisted state, and the
// rider, the new rental, and the occupied motorcycle are committed atomically.
type CreateRentalCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewCreateRentalCommandHandler creates a handler for rental creation.
func NewCreateRentalCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateRentalCommandHandler {
	return CreateRentalCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the rental creation command and returns the public
// identifier of the new contract, e.g. "locacao1".
func (h *CreateRentalCommandHandler) Handle(ctx context.Context, cmd CreateRentalCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	motoRepo := uow.MotorcycleRepository()
	rentalRepo := uow.RentalRepository()

	r, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return "", err
	}

	moto, err := motoRepo.Get(ctx, cmd.MotorcycleID())
	if err != nil {
		return "", err
	}

	rt, err := services.NewRentalBooker().Book(r, moto,
		cmd.Start(), cmd.End(), cmd.ExpectedEnd(), cmd.Plan(), h.clock.Now())
	if err != nil {
		return "", err
	}

	if err = rentalRepo.Add(ctx, rt); err != nil {
		return "", err
	}

	if err = motoRepo.Update(ctx, moto); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return rt.Identifier(), nil
}
