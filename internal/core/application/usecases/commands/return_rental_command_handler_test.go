package commands_test

import (
	"testing"
	"time"

	"rentmoto/internal/core/application/usecases/commands"
	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openRental(t *testing.T) *rental.Rental {
	t.Helper()
	riderID, err := kernel.NewID("rider123")
	require.NoError(t, err)
	motoID, err := kernel.NewID("moto123")
	require.NoError(t, err)
	expectedEnd := rentalStart.AddDate(0, 0, 7)
	rt, err := rental.RestoreRental(7, riderID, motoID,
		rentalStart, expectedEnd, expectedEnd, rental.PlanDays7,
		decimal.NewFromInt(210), decimal.NewFromInt(50), true)
	require.NoError(t, err)
	return rt
}

func TestReturnRentalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	rt := openRental(t)
	moto := freeMotorcycle(t)
	moto.MarkAsRented(testNow)
	cmd, err := commands.NewReturnRentalCommand(7, rentalStart.AddDate(0, 0, 3))
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	motoRepo := new(MockMotorcycleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RentalRepository").Return(rentalRepo).Once()
	uow.On("MotorcycleRepository").Return(motoRepo).Once()
	rentalRepo.On("Get", mock.Anything, 7).Return(rt, nil).Once()
	motoRepo.On("Get", mock.Anything, rt.MotorcycleID()).Return(moto, nil).Once()
	rentalRepo.On("Update", mock.Anything, rt).Return(nil).Once()
	motoRepo.On("Update", mock.Anything, moto).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnRentalCommandHandler(factory, testClock())
	breakdown, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, breakdown.Total().Equal(decimal.NewFromInt(138)), "total: %s", breakdown.Total())
	assert.False(t, rt.IsActive())
	assert.False(t, moto.HasRentals())
	rentalRepo.AssertExpectations(t)
	motoRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReturnRentalCommandHandler_Handle_AlreadyClosed(t *testing.T) {
	ctx := t.Context()
	rt := openRental(t)
	_, err := rt.InformReturn(rentalStart.AddDate(0, 0, 3))
	require.NoError(t, err)
	cmd, err := commands.NewReturnRentalCommand(7, rentalStart.AddDate(0, 0, 4))
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RentalRepository").Return(rentalRepo).Once()
	uow.On("MotorcycleRepository").Return(new(MockMotorcycleRepository)).Once()
	rentalRepo.On("Get", mock.Anything, 7).Return(rt, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnRentalCommandHandler(factory, testClock())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	uow.AssertNotCalled(t, "Commit")
}

func TestReturnRentalCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	rt := openRental(t)
	moto := freeMotorcycle(t)
	cmd, err := commands.NewReturnRentalCommand(7, rentalStart.AddDate(0, 0, 3))
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	motoRepo := new(MockMotorcycleRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RentalRepository").Return(rentalRepo).Once()
	uow.On("MotorcycleRepository").Return(motoRepo).Once()
	rentalRepo.On("Get", mock.Anything, 7).Return(rt, nil).Once()
	motoRepo.On("Get", mock.Anything, rt.MotorcycleID()).Return(moto, nil).Once()
	rentalRepo.On("Update", mock.Anything, rt).
		Return(errs.NewVersionIsInvalidError("rental")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRentalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnRentalCommandHandler(factory, testClock())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit")
}

func TestNewReturnRentalCommand_Invalid(t *testing.T) {
	_, err := commands.NewReturnRentalCommand(0, rentalStart)
	require.Error(t, err)

	var zero time.Time
	_, err = commands.NewReturnRentalCommand(1, zero)
	require.Error(t, err)
}
