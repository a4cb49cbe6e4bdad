package commands

import (
	"context"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
)

// ReturnRentalCommandHandler closes rental contracts. The rental row is
// updated under optimistic concurrency, so two racing returns of the same
// contract cannot both commit; the loser surfaces a version conflict.
type ReturnRentalCommandHandler struct {
	uowFactory RentalUoWFactory
	clock      kernel.Clock
}

// NewReturnRentalCommandHandler creates a handler for rental returns.
func NewReturnRentalCommandHandler(
	uowFactory RentalUoWFactory, clock kernel.Clock,
) ReturnRentalCommandHandler {
	return ReturnRentalCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the return command and yields the final price breakdown.
func (h *ReturnRentalCommandHandler) Handle(
	ctx context.Context, cmd ReturnRentalCommand,
) (rental.PriceBreakdown, error) {
	if err := cmd.Validate(); err != nil {
		return rental.PriceBreakdown{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return rental.PriceBreakdown{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rentalRepo := uow.RentalRepository()
	motoRepo := uow.MotorcycleRepository()

	rt, err := rentalRepo.Get(ctx, cmd.RentalID())
	if err != nil {
		return rental.PriceBreakdown{}, err
	}

	breakdown, err := rt.InformReturn(cmd.ReturnInstant())
	if err != nil {
		return rental.PriceBreakdown{}, err
	}

	moto, err := motoRepo.Get(ctx, rt.MotorcycleID())
	if err != nil {
		return rental.PriceBreakdown{}, err
	}
	moto.MarkAsNotRented(h.clock.Now())

	if err = rentalRepo.Update(ctx, rt); err != nil {
		return rental.PriceBreakdown{}, err
	}

	if err = motoRepo.Update(ctx, moto); err != nil {
		return rental.PriceBreakdown{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return rental.PriceBreakdown{}, err
	}

	return breakdown, nil
}
