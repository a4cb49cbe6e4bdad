package commands

import (
	"context"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/ports"
)

// UpdateRiderCNHPhotoCommandHandler handles license photo uploads. The image
// is written to photo storage first; only the returned reference is recorded
// on the aggregate.
type UpdateRiderCNHPhotoCommandHandler struct {
	uowFactory RiderUoWFactory
	storage    ports.PhotoStorage
	clock      kernel.Clock
}

// NewUpdateRiderCNHPhotoCommandHandler creates a handler for license photo updates.
func NewUpdateRiderCNHPhotoCommandHandler(
	uowFactory RiderUoWFactory, storage ports.PhotoStorage, clock kernel.Clock,
) UpdateRiderCNHPhotoCommandHandler {
	return UpdateRiderCNHPhotoCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		clock:      clock,
	}
}

// Handle processes the photo update command.
func (h *UpdateRiderCNHPhotoCommandHandler) Handle(ctx context.Context, cmd UpdateRiderCNHPhotoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	reference, err := h.storage.Save(ctx, cmd.Content(), cmd.FileName())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RiderRepository()

	r, err := repo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = r.UpdateCNHPhoto(reference, h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
