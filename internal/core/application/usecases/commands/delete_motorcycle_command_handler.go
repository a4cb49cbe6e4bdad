package commands

import (
	"context"

	"rentmoto/internal/pkg/errs"
)

// DeleteMotorcycleCommandHandler handles fleet removals. A unit that carries
// any rental, open or historical, must not be deleted.
type DeleteMotorcycleCommandHandler struct {
	uowFactory MotorcycleUoWFactory
}

// NewDeleteMotorcycleCommandHandler creates a handler for motorcycle deletion.
func NewDeleteMotorcycleCommandHandler(uowFactory MotorcycleUoWFactory) DeleteMotorcycleCommandHandler {
	return DeleteMotorcycleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteMotorcycleCommandHandler) Handle(ctx context.Context, cmd DeleteMotorcycleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MotorcycleRepository()

	moto, err := repo.Get(ctx, cmd.MotorcycleID())
	if err != nil {
		return err
	}

	if moto.HasRentals() {
		return errs.NewBusinessRuleViolatedError("motorcycle has rentals")
	}

	if err = repo.Delete(ctx, moto.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
