package rental_test

import (
	"testing"

	"rentmoto/internal/core/domain/model/rental"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan(t *testing.T) {
	t.Run("should parse every supported tier", func(t *testing.T) {
		cases := map[int]rental.Plan{
			7:  rental.PlanDays7,
			15: rental.PlanDays15,
			30: rental.PlanDays30,
			45: rental.PlanDays45,
			50: rental.PlanDays50,
		}

		for days, want := range cases {
			plan, err := rental.ParsePlan(days)

			require.NoError(t, err)
			assert.Equal(t, want, plan)
			assert.Equal(t, days, plan.Days())
		}
	})

	t.Run("should fail with unsupported day counts", func(t *testing.T) {
		for _, days := range []int{0, 1, 8, 14, 31, 100, -7} {
			plan, err := rental.ParsePlan(days)

			require.Error(t, err)
			assert.Equal(t, rental.PlanUnknown, plan)
		}
	})
}

func TestPlan_DailyPrice(t *testing.T) {
	cases := map[rental.Plan]int64{
		rental.PlanDays7:  30,
		rental.PlanDays15: 28,
		rental.PlanDays30: 22,
		rental.PlanDays45: 20,
		rental.PlanDays50: 18,
	}

	for plan, want := range cases {
		assert.True(t, plan.DailyPrice().Equal(decimal.NewFromInt(want)),
			"plan %s should cost %d per day", plan, want)
	}

	assert.True(t, rental.PlanUnknown.DailyPrice().IsZero())
}

func TestPlan_EarlyReturnPenaltyRate(t *testing.T) {
	t.Run("only the two shortest plans penalize early return", func(t *testing.T) {
		assert.True(t, rental.PlanDays7.EarlyReturnPenaltyRate().Equal(decimal.NewFromFloat(0.20)))
		assert.True(t, rental.PlanDays15.EarlyReturnPenaltyRate().Equal(decimal.NewFromFloat(0.40)))

		for _, plan := range []rental.Plan{rental.PlanDays30, rental.PlanDays45, rental.PlanDays50} {
			assert.True(t, plan.EarlyReturnPenaltyRate().IsZero(), "plan %s should not penalize", plan)
		}
	})
}

func TestPlan_String(t *testing.T) {
	assert.Equal(t, "30 days", rental.PlanDays30.String())
	assert.Equal(t, "Unknown", rental.PlanUnknown.String())
	assert.Equal(t, "Unknown", rental.Plan(12).String())
}
