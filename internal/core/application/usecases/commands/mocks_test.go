package commands_test

import (
	"context"
	"errors"
	"time"

	"rentmoto/internal/core/application/usecases/commands"
	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/core/domain/model/rental"
	"rentmoto/internal/core/domain/model/rider"
	"rentmoto/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)

func testClock() kernel.Clock {
	return kernel.NewFixedClock(testNow)
}

type MockMotorcycleRepository struct{ mock.Mock }

func (m *MockMotorcycleRepository) Add(ctx context.Context, moto *motorcycle.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockMotorcycleRepository) Update(ctx context.Context, moto *motorcycle.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockMotorcycleRepository) Get(ctx context.Context, id kernel.ID) (*motorcycle.Motorcycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*motorcycle.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepository) GetByPlate(_ context.Context, _ string) (*motorcycle.Motorcycle, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockMotorcycleRepository) ExistsWithPlate(
	ctx context.Context, normalizedPlate string, excludeID kernel.ID,
) (bool, error) {
	args := m.Called(ctx, normalizedPlate, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockMotorcycleRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.DeliveryRider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRiderRepository) Update(ctx context.Context, r *rider.DeliveryRider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRiderRepository) Get(ctx context.Context, id kernel.ID) (*rider.DeliveryRider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.DeliveryRider), args.Error(1)
}
func (m *MockRiderRepository) ExistsWithCNPJ(ctx context.Context, normalizedCNPJ string) (bool, error) {
	args := m.Called(ctx, normalizedCNPJ)
	return args.Bool(0), args.Error(1)
}
func (m *MockRiderRepository) ExistsWithCNHNumber(ctx context.Context, cnhNumber string) (bool, error) {
	args := m.Called(ctx, cnhNumber)
	return args.Bool(0), args.Error(1)
}

type MockRentalRepository struct{ mock.Mock }

func (m *MockRentalRepository) Add(ctx context.Context, rt *rental.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalRepository) Update(ctx context.Context, rt *rental.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalRepository) Get(ctx context.Context, id int) (*rental.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Rental), args.Error(1)
}
func (m *MockRentalRepository) GetOpenByRider(_ context.Context, _ kernel.ID) (*rental.Rental, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockRentalRepository) HasOpenByRider(_ context.Context, _ kernel.ID) (bool, error) {
	return false, errors.New("not implemented in mock")
}

// MockUoW satisfies every narrowed unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) MotorcycleRepository() ports.MotorcycleRepository {
	args := m.Called()
	return args.Get(0).(ports.MotorcycleRepository)
}
func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}
func (m *MockUoW) RentalRepository() ports.RentalRepository {
	args := m.Called()
	return args.Get(0).(ports.RentalRepository)
}

type MockMotorcycleUoWFactory struct{ mock.Mock }

func (m *MockMotorcycleUoWFactory) Create() commands.MotorcycleUoW {
	args := m.Called()
	return args.Get(0).(commands.MotorcycleUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	args := m.Called()
	return args.Get(0).(commands.RiderUoW)
}

type MockRentalUoWFactory struct{ mock.Mock }

func (m *MockRentalUoWFactory) Create() commands.RentalUoW {
	args := m.Called()
	return args.Get(0).(commands.RentalUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, event any) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}

type MockPhotoStorage struct{ mock.Mock }

func (m *MockPhotoStorage) Save(ctx context.Context, content []byte, fileName string) (string, error) {
	args := m.Called(ctx, content, fileName)
	return args.String(0), args.Error(1)
}
