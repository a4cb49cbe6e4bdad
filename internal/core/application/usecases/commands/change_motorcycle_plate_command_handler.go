package commands

import (
	"context"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/pkg/errs"
)

// ChangeMotorcyclePlateCommandHandler handles plate replacements. Uniqueness
// is re-checked against every other unit before the change; the storage
// constraint backstops concurrent changes.
type ChangeMotorcyclePlateCommandHandler struct {
	uowFactory MotorcycleUoWFactory
	clock      kernel.Clock
}

// NewChangeMotorcyclePlateCommandHandler creates a handler for plate changes.
func NewChangeMotorcyclePlateCommandHandler(
	uowFactory MotorcycleUoWFactory, clock kernel.Clock,
) ChangeMotorcyclePlateCommandHandler {
	return ChangeMotorcyclePlateCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the plate change command. Replacing a plate with itself
// is a no-op, not an error.
func (h *ChangeMotorcyclePlateCommandHandler) Handle(ctx context.Context, cmd ChangeMotorcyclePlateCommand) error {
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

	if moto.Plate().IsEqual(cmd.Plate()) {
		return nil
	}

	taken, err := repo.ExistsWithPlate(ctx, cmd.Plate().String(), moto.ID())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewBusinessRuleViolatedError("plate is already registered")
	}

	if err = moto.ChangePlate(cmd.Plate(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, moto); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
