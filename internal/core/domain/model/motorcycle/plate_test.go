package motorcycle_test

import (
	"testing"

	"rentmoto/internal/core/domain/model/motorcycle"
	"rentmoto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlate(t *testing.T) {
	t.Run("uppercases and strips separators", func(t *testing.T) {
		assert.Equal(t, "ABC1D23", motorcycle.NormalizePlate("abc-1d23"))
		assert.Equal(t, "ABC1D23", motorcycle.NormalizePlate("abc 1d23"))
		assert.Equal(t, "CDX0101", motorcycle.NormalizePlate("CDX-0101"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		inputs := []string{"abc1d23", "AbC-1d23", "a!b@c#1$d%2^3", "", "   ", "ABC1D23"}
		for _, in := range inputs {
			once := motorcycle.NormalizePlate(in)
			assert.Equal(t, once, motorcycle.NormalizePlate(once))
		}
	})

	t.Run("drops every non-alphanumeric character", func(t *testing.T) {
		assert.Equal(t, "ABC1D23", motorcycle.NormalizePlate(" a.b.c-1/d\t2_3 "))
		assert.Equal(t, "", motorcycle.NormalizePlate("---"))
	})
}

func TestNewPlate(t *testing.T) {
	t.Run("accepts a valid Mercosul plate", func(t *testing.T) {
		plate, err := motorcycle.NewPlate("abc1d23")

		require.NoError(t, err)
		assert.Equal(t, "ABC1D23", plate.String())
		require.NoError(t, plate.Validate())
	})

	t.Run("accepts the all-digit second block variant", func(t *testing.T) {
		plate, err := motorcycle.NewPlate("CDX-0101")

		require.NoError(t, err)
		assert.Equal(t, "CDX0101", plate.String())
	})

	t.Run("rejects a blank plate", func(t *testing.T) {
		_, err := motorcycle.NewPlate("  -- ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a 6-character plate", func(t *testing.T) {
		_, err := motorcycle.NewPlate("AB1234")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "7 characters")
	})

	t.Run("rejects a plate breaking the Mercosul pattern", func(t *testing.T) {
		// correct length, wrong positions
		_, err := motorcycle.NewPlate("1BC1D23")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Mercosul")
	})
}

func TestPlate_IsEqual(t *testing.T) {
	a, _ := motorcycle.NewPlate("abc1d23")
	b, _ := motorcycle.NewPlate("ABC-1D23")
	c, _ := motorcycle.NewPlate("XYZ9A88")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPlate_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var plate motorcycle.Plate

		err := plate.Validate()

		require.Error(t, err)
		assert.Equal(t, motorcycle.ErrPlateIsNotConstructed, err)
	})
}
