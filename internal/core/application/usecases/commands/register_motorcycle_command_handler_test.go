package commands_test

import (
	"errors"
	"testing"

	"rentmoto/internal/core/application/usecases/commands"
	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegisterMotorcycleCommand(t *testing.T) commands.RegisterMotorcycleCommand {
	t.Helper()
	id, err := kernel.NewID("moto123")
	require.NoError(t, err)
	cmd, err := commands.NewRegisterMotorcycleCommand(id, 2024, "Mottu Sport", "ABC1D23")
	require.NoError(t, err)
	return cmd
}

func TestRegisterMotorcycleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterMotorcycleCommand(t)

	repo := new(MockMotorcycleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("ExistsWithPlate", mock.Anything, "ABC1D23", kernel.ID{}).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*motorcycle.Motorcycle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMotorcycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, "motorcycles.registered", mock.Anything).Return(nil).Once()

	h := commands.NewRegisterMotorcycleCommandHandler(factory, testClock(), publisher, "motorcycles.registered")
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRegisterMotorcycleCommandHandler_Handle_DuplicatePlate(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterMotorcycleCommand(t)

	repo := new(MockMotorcycleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("ExistsWithPlate", mock.Anything, "ABC1D23", kernel.ID{}).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMotorcycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewRegisterMotorcycleCommandHandler(factory, testClock(), publisher, "motorcycles.registered")
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	publisher.AssertNotCalled(t, "Publish")
}

func TestRegisterMotorcycleCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterMotorcycleCommand(t)

	repo := new(MockMotorcycleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("ExistsWithPlate", mock.Anything, "ABC1D23", kernel.ID{}).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*motorcycle.Motorcycle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMotorcycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, "motorcycles.registered", mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	h := commands.NewRegisterMotorcycleCommandHandler(factory, testClock(), publisher, "motorcycles.registered")
	err := h.Handle(ctx, cmd)
	require.NoError(t, err, "publish failure must not undo the registration")
}

func TestRegisterMotorcycleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterMotorcycleCommand{} // not constructed properly
	factory := new(MockMotorcycleUoWFactory)
	h := commands.NewRegisterMotorcycleCommandHandler(factory, testClock(), new(MockEventPublisher), "topic")
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterMotorcycleCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterMotorcycleCommand(t)

	repo := new(MockMotorcycleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("ExistsWithPlate", mock.Anything, "ABC1D23", kernel.ID{}).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*motorcycle.Motorcycle")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMotorcycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMotorcycleCommandHandler(factory, testClock(), new(MockEventPublisher), "topic")
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewRegisterMotorcycleCommand_InvalidPlate(t *testing.T) {
	id, err := kernel.NewID("moto123")
	require.NoError(t, err)

	_, err = commands.NewRegisterMotorcycleCommand(id, 2024, "Mottu Sport", "AB1234")
	require.Error(t, err)
}
