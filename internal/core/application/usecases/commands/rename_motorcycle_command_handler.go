package commands

import (
	"context"

	"rentmoto/internal/core/domain/model/kernel"
)

// RenameMotorcycleCommandHandler handles model name changes on fleet units.
type RenameMotorcycleCommandHandler struct {
	uowFactory MotorcycleUoWFactory
	clock      kernel.Clock
}

// NewRenameMotorcycleCommandHandler creates a handler for motorcycle renames.
func NewRenameMotorcycleCommandHandler(
	uowFactory MotorcycleUoWFactory, clock kernel.Clock,
) RenameMotorcycleCommandHandler {
	return RenameMotorcycleCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the rename command.
func (h *RenameMotorcycleCommandHandler) Handle(ctx context.Context, cmd RenameMotorcycleCommand) error {
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

	if err = moto.Rename(cmd.Model(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, moto); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
