package rental_test

import (
	"testing"

	"rentmoto/internal/core/domain/model/rental"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriceBreakdown(t *testing.T) {
	t.Run("should compute total as base plus penalty plus extras", func(t *testing.T) {
		pb, err := rental.NewPriceBreakdown(4, 3, 0,
			decimal.NewFromInt(30),
			decimal.NewFromInt(120),
			decimal.NewFromInt(18),
			decimal.Zero)

		require.NoError(t, err)
		require.NoError(t, pb.Validate())
		assert.Equal(t, 4, pb.UsedDays())
		assert.Equal(t, 3, pb.UnusedDays())
		assert.Equal(t, 0, pb.ExtraDays())
		assert.True(t, pb.Total().Equal(decimal.NewFromInt(138)))
	})

	t.Run("should reject negative day counts", func(t *testing.T) {
		_, err := rental.NewPriceBreakdown(-1, 0, 0,
			decimal.NewFromInt(30), decimal.Zero, decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "usedDays")
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := rental.NewPriceBreakdown(1, 0, 0,
			decimal.NewFromInt(30), decimal.NewFromInt(-30), decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "baseValue")
	})

	t.Run("should aggregate every offending field", func(t *testing.T) {
		_, err := rental.NewPriceBreakdown(-1, -2, 0,
			decimal.NewFromInt(30), decimal.Zero, decimal.NewFromInt(-5), decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "usedDays")
		assert.Contains(t, err.Error(), "unusedDays")
		assert.Contains(t, err.Error(), "penalty")
	})
}

func TestPriceBreakdown_IsEqual(t *testing.T) {
	a, err := rental.NewPriceBreakdown(4, 3, 0,
		decimal.NewFromInt(30), decimal.NewFromInt(120), decimal.NewFromInt(18), decimal.Zero)
	require.NoError(t, err)

	t.Run("equal by numeric value regardless of decimal representation", func(t *testing.T) {
		b, err := rental.NewPriceBreakdown(4, 3, 0,
			decimal.NewFromFloat(30.0), decimal.NewFromFloat(120.00),
			decimal.NewFromFloat(18.0), decimal.NewFromFloat(0))
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("differs when any field differs", func(t *testing.T) {
		b, err := rental.NewPriceBreakdown(5, 3, 0,
			decimal.NewFromInt(30), decimal.NewFromInt(120), decimal.NewFromInt(18), decimal.Zero)
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})
}

func TestPriceBreakdown_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var pb rental.PriceBreakdown

		err := pb.Validate()

		require.Error(t, err)
		assert.Equal(t, rental.ErrPriceBreakdownIsNotConstructed, err)
	})
}
