package commands

import (
	"context"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rider"
)

// RegisterRiderCommandHandler handles rider registration. The aggregate's
// uniqueness predicates are answered by the repository inside the same
// transaction; the cnpj and cnh-number unique constraints backstop the
// remaining race at commit time.
type RegisterRiderCommandHandler struct {
	uowFactory RiderUoWFactory
	clock      kernel.Clock
}

// NewRegisterRiderCommandHandler creates a handler for rider registration.
func NewRegisterRiderCommandHandler(
	uowFactory RiderUoWFactory, clock kernel.Clock,
) RegisterRiderCommandHandler {
	return RegisterRiderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the registration command.
func (h *RegisterRiderCommandHandler) Handle(ctx context.Context, cmd RegisterRiderCommand) error {
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

	repo := uow.RiderRepository()

	// The aggregate wants synchronous predicates; repository errors are
	// captured on the side and reported before any domain outcome.
	var predicateErr error
	cnpjExists := func(normalizedCNPJ string) bool {
		exists, err := repo.ExistsWithCNPJ(ctx, normalizedCNPJ)
		if err != nil {
			predicateErr = err
		}
		return exists
	}
	cnhNumberExists := func(cnhNumber string) bool {
		exists, err := repo.ExistsWithCNHNumber(ctx, cnhNumber)
		if err != nil {
			predicateErr = err
		}
		return exists
	}

	r, err := rider.RegisterRider(cmd.RiderID(), cmd.CNPJ(), cmd.Name(), cmd.BirthDate(),
		cmd.CNH(), cnpjExists, cnhNumberExists, h.clock.Now())
	if predicateErr != nil {
		return predicateErr
	}
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
