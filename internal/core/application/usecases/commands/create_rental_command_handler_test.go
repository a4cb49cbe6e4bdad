package commands_test

import (
	"testing"
	"time"

	"rentmoto/internal/core/application/usecases/commands"
	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/core/domain/model/rider"
	"rentmoto/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var rentalStart = time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)

func eligibleRider(t *testing.T, rentals []*rental.Rental) *rider.DeliveryRider {
	t.Helper()
	id, err := kernel.NewID("rider123")
	require.NoError(t, err)
	cnh, err := rider.NewCNH(rider.CNHTypeA, "12345678900", "")
	require.NoError(t, err)
	birth := time.Date(1995, 3, 20, 0, 0, 0, 0, time.UTC)
	r, err := rider.RestoreRider(id, "12345678000199", "Joao Silva", birth, cnh,
		rentals, true, testNow, nil)
	require.NoError(t, err)
	return r
}

func freeMotorcycle(t *testing.T) *motorcycle.Motorcycle {
	t.Helper()
	id, err := kernel.NewID("moto123")
	require.NoError(t, err)
	plate, err := motorcycle.NewPlate("ABC1D23")
	require.NoError(t, err)
	m, err := motorcycle.NewMotorcycle(id, 2024, "Mottu Sport", plate, testNow)
	require.NoError(t, err)
	return m
}

func validCreateRentalCommand(t *testing.T) commands.CreateRentalCommand {
	t.Helper()
	riderID, err := kernel.NewID("rider123")
	require.NoError(t, err)
	motoID, err := kernel.NewID("moto123")
	require.NoError(t, err)
	expectedEnd := rentalStart.AddDate(0, 0, 7)
	cmd, err := commands.NewCreateRentalCommand(riderID, motoID,
		rentalStart, expectedEnd, expectedEnd, rental.PlanDays7)
	require.NoError(t, err)
	return cmd
}

func TestCreateRentalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateRentalCommand(t)
	r := eligibleRider(t, nil)
	moto := freeMotorcycle(t)

	riderRepo := new(MockRiderRepository)
	motoRepo := new(MockMotorcycleRepository)
	rentalRepo := new(MockRentalRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("MotorcycleRepository").Return(motoRepo).Once()
	uow.On("RentalRepository").Return(rentalRepo).Once()
	riderRepo.On("Get", mock.Anything, cmd.RiderID()).Return(r, nil).Once()
	motoRepo.On("Get", mock.Anything, cmd.MotorcycleID()).Return(moto, nil).Once()
	rentalRepo.On("Add", mock.Anything, mock.AnythingOfType("*rental.Rental")).
		Run(func(args mock.Arguments) {
			rt := args.Get(1).(*rental.Rental)
			require.NoError(t, rt.AssignID(7))
		}).Return(nil).Once()
	motoRepo.On("Update", mock.Anything, moto).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRentalCommandHandler(factory, testClock())
	identifier, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "locacao7", identifier)
	assert.True(t, moto.HasRentals(), "motorcycle must be marked as rented")
	riderRepo.AssertExpectations(t)
	motoRepo.AssertExpectations(t)
	rentalRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRentalCommandHandler_Handle_RiderHasOpenRental(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateRentalCommand(t)

	open, err := rental.RestoreRental(1, cmd.RiderID(), cmd.MotorcycleID(),
		rentalStart.AddDate(0, 0, -10), rentalStart, rentalStart, rental.PlanDays7,
		decimal.NewFromInt(210), decimal.NewFromInt(50), true)
	require.NoError(t, err)
	r := eligibleRider(t, []*rental.Rental{open})
	moto := freeMotorcycle(t)

	riderRepo := new(MockRiderRepository)
	motoRepo := new(MockMotorcycleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("MotorcycleRepository").Return(motoRepo).Once()
	uow.On("RentalRepository").Return(new(MockRentalRepository)).Once()
	riderRepo.On("Get", mock.Anything, cmd.RiderID()).Return(r, nil).Once()
	motoRepo.On("Get", mock.Anything, cmd.MotorcycleID()).Return(moto, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRentalCommandHandler(factory, testClock())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.False(t, moto.HasRentals())
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateRentalCommandHandler_Handle_RiderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateRentalCommand(t)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("MotorcycleRepository").Return(new(MockMotorcycleRepository)).Once()
	uow.On("RentalRepository").Return(new(MockRentalRepository)).Once()
	riderRepo.On("Get", mock.Anything, cmd.RiderID()).
		Return(nil, errs.NewObjectNotFoundError("riderID", "rider123")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRentalCommandHandler(factory, testClock())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateRentalCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateRentalCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCreateRentalCommandHandler(factory, testClock())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
