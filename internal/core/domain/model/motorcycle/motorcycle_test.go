package motorcycle_test

import (
	"testing"
	"time"

	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)

func validMotorcycle(t *testing.T) *motorcycle.Motorcycle {
	t.Helper()
	id, err := kernel.NewID("moto123")
	require.NoError(t, err)
	plate, err := motorcycle.NewPlate("ABC1D23")
	require.NoError(t, err)
	m, err := motorcycle.NewMotorcycle(id, 2024, "Mottu Sport", plate, testNow)
	require.NoError(t, err)
	return m
}

func TestNewMotorcycle(t *testing.T) {
	validID, _ := kernel.NewID("moto123")
	validPlate, _ := motorcycle.NewPlate("ABC1D23")

	t.Run("should create valid motorcycle", func(t *testing.T) {
		m, err := motorcycle.NewMotorcycle(validID, 2024, "Mottu Sport", validPlate, testNow)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(validID))
		assert.Equal(t, 2024, m.Year())
		assert.Equal(t, "Mottu Sport", m.Model())
		assert.Equal(t, "ABC1D23", m.Plate().String())
		assert.False(t, m.HasRentals())
		assert.Equal(t, testNow, m.CreatedAt())
		assert.Nil(t, m.UpdatedAt())
	})

	t.Run("should accept next model year", func(t *testing.T) {
		m, err := motorcycle.NewMotorcycle(validID, testNow.Year()+1, "Mottu Sport", validPlate, testNow)

		require.NoError(t, err)
		assert.Equal(t, testNow.Year()+1, m.Year())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.ID

		m, err := motorcycle.NewMotorcycle(invalidID, 2024, "Mottu Sport", validPlate, testNow)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "ID must be created")
	})

	t.Run("should fail with year below minimum", func(t *testing.T) {
		m, err := motorcycle.NewMotorcycle(validID, 1899, "Mottu Sport", validPlate, testNow)

		require.Error(t, err)
		assert.Nil(t, m)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with year beyond next year", func(t *testing.T) {
		m, err := motorcycle.NewMotorcycle(validID, testNow.Year()+2, "Mottu Sport", validPlate, testNow)

		require.Error(t, err)
		assert.Nil(t, m)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with blank model", func(t *testing.T) {
		m, err := motorcycle.NewMotorcycle(validID, 2024, "   ", validPlate, testNow)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("should fail with zero-value plate", func(t *testing.T) {
		var invalidPlate motorcycle.Plate

		m, err := motorcycle.NewMotorcycle(validID, 2024, "Mottu Sport", invalidPlate, testNow)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "plate must be created")
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		var invalidID kernel.ID
		var invalidPlate motorcycle.Plate

		m, err := motorcycle.NewMotorcycle(invalidID, 1800, "", invalidPlate, testNow)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "ID must be created")
		assert.Contains(t, err.Error(), "year")
		assert.Contains(t, err.Error(), "model")
		assert.Contains(t, err.Error(), "plate must be created")
	})
}

func TestRestoreMotorcycle(t *testing.T) {
	id, _ := kernel.NewID("moto123")
	plate, _ := motorcycle.NewPlate("ABC1D23")

	t.Run("should restore persisted state including occupancy", func(t *testing.T) {
		updated := testNow.Add(time.Hour)

		m, err := motorcycle.RestoreMotorcycle(id, 2020, "Mottu Pop", plate, true, testNow, &updated)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.HasRentals())
		assert.Equal(t, testNow, m.CreatedAt())
		require.NotNil(t, m.UpdatedAt())
		assert.Equal(t, updated, *m.UpdatedAt())
	})

	t.Run("should not apply the registration-time year upper bound", func(t *testing.T) {
		// a unit registered years ago can carry a year far below now+1
		m, err := motorcycle.RestoreMotorcycle(id, 1950, "Classic", plate, false, testNow, nil)

		require.NoError(t, err)
		assert.Equal(t, 1950, m.Year())
	})

	t.Run("should still reject a year below minimum", func(t *testing.T) {
		_, err := motorcycle.RestoreMotorcycle(id, 1899, "Classic", plate, false, testNow, nil)

		require.Error(t, err)
	})
}

func TestMotorcycle_Rename(t *testing.T) {
	t.Run("should replace model and mark modified", func(t *testing.T) {
		m := validMotorcycle(t)
		later := testNow.Add(time.Hour)

		err := m.Rename("Mottu Pop 110i", later)

		require.NoError(t, err)
		assert.Equal(t, "Mottu Pop 110i", m.Model())
		require.NotNil(t, m.UpdatedAt())
		assert.Equal(t, later, *m.UpdatedAt())
	})

	t.Run("should fail with blank model", func(t *testing.T) {
		m := validMotorcycle(t)

		err := m.Rename("  ", testNow)

		require.Error(t, err)
		assert.Equal(t, motorcycle.ErrModelIsRequired, err)
		assert.Equal(t, "Mottu Sport", m.Model())
	})
}

func TestMotorcycle_ChangePlate(t *testing.T) {
	t.Run("should replace plate and mark modified", func(t *testing.T) {
		m := validMotorcycle(t)
		newPlate, _ := motorcycle.NewPlate("XYZ9A88")
		later := testNow.Add(time.Hour)

		err := m.ChangePlate(newPlate, later)

		require.NoError(t, err)
		assert.Equal(t, "XYZ9A88", m.Plate().String())
		require.NotNil(t, m.UpdatedAt())
	})

	t.Run("identical plate is a no-op, not an error", func(t *testing.T) {
		m := validMotorcycle(t)
		samePlate, _ := motorcycle.NewPlate("abc-1d23")

		err := m.ChangePlate(samePlate, testNow.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, "ABC1D23", m.Plate().String())
		assert.Nil(t, m.UpdatedAt())
	})

	t.Run("should fail with zero-value plate", func(t *testing.T) {
		m := validMotorcycle(t)
		var invalidPlate motorcycle.Plate

		err := m.ChangePlate(invalidPlate, testNow)

		require.Error(t, err)
		assert.Equal(t, "ABC1D23", m.Plate().String())
	})
}

func TestMotorcycle_Occupancy(t *testing.T) {
	t.Run("MarkAsRented and MarkAsNotRented toggle the flag", func(t *testing.T) {
		m := validMotorcycle(t)

		m.MarkAsRented(testNow.Add(time.Hour))
		assert.True(t, m.HasRentals())

		m.MarkAsNotRented(testNow.Add(2 * time.Hour))
		assert.False(t, m.HasRentals())
	})

	t.Run("marking is idempotent", func(t *testing.T) {
		m := validMotorcycle(t)

		m.MarkAsRented(testNow.Add(time.Hour))
		first := *m.UpdatedAt()

		m.MarkAsRented(testNow.Add(2 * time.Hour))
		assert.Equal(t, first, *m.UpdatedAt())
	})
}

func TestMotorcycle_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var m motorcycle.Motorcycle

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, motorcycle.ErrMotorcycleIsNotConstructed, err)
	})

	t.Run("nil pointer fails validation", func(t *testing.T) {
		var m *motorcycle.Motorcycle

		err := m.Validate()

		require.Error(t, err)
	})
}

func TestNewRegisteredEvent(t *testing.T) {
	m := validMotorcycle(t)
	occurredAt := time.Date(2025, 8, 15, 10, 0, 1, 0, time.FixedZone("BRT", -3*3600))

	evt := motorcycle.NewRegisteredEvent(m, occurredAt)

	assert.Equal(t, "moto123", evt.MotorcycleID)
	assert.Equal(t, 2024, evt.Year)
	assert.Equal(t, "Mottu Sport", evt.Model)
	assert.Equal(t, "ABC1D23", evt.Plate)
	assert.Equal(t, time.UTC, evt.OccurredAt.Location())
	assert.True(t, evt.OccurredAt.Equal(occurredAt))
}
