package commands

import (
	"context"
	"log/slog"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/core/ports"
	"rentmoto/internal/pkg/errs"
)

// RegisterMotorcycleCommandHandler handles the business logic for adding a
// unit to the fleet. Plate uniqueness is pre-checked against current storage
// state; the unique constraint on the plate column is the backstop that
// closes the race between concurrent registrations.
//
// After a successful commit, a registration event is published to the
// message broker. Publishing failures are logged and never undo the
// registration.
type RegisterMotorcycleCommandHandler struct {
	uowFactory MotorcycleUoWFactory
	clock      kernel.Clock
	publisher  ports.EventPublisher
	topic      string
}

// NewRegisterMotorcycleCommandHandler creates a handler for motorcycle registration.
func NewRegisterMotorcycleCommandHandler(
	uowFactory MotorcycleUoWFactory,
	clock kernel.Clock,
	publisher ports.EventPublisher,
	topic string,
) RegisterMotorcycleCommandHandler {
	return RegisterMotorcycleCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
		topic:      topic,
	}
}

// Handle processes the registration command.
func (h *RegisterMotorcycleCommandHandler) Handle(ctx context.Context, cmd RegisterMotorcycleCommand) error {
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

	taken, err := repo.ExistsWithPlate(ctx, cmd.Plate().String(), kernel.ID{})
	if err != nil {
		return err
	}
	if taken {
		return errs.NewBusinessRuleViolatedError("plate is already registered")
	}

	now := h.clock.Now()
	moto, err := motorcycle.NewMotorcycle(cmd.MotorcycleID(), cmd.Year(), cmd.Model(), cmd.Plate(), now)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, moto); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := motorcycle.NewRegisteredEvent(moto, now)
	if err = h.publisher.Publish(ctx, h.topic, event); err != nil {
		slog.WarnContext(ctx, "failed to publish motorcycle registered event",
			"motorcycle_id", moto.ID().String(), "error", err)
	}

	return nil
}
