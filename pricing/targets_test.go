package pricing

import (
	"testing"

	"airbnb-pricing/models"

	"github.com/stretchr/testify/assert"
)

func TestSeasonNetTargets(t *testing.T) {
	in := fiveSeasonInputs()
	booked := map[string]int{"Deep Low": 24, "Low": 51, "Early or Late": 55, "Season": 64, "Peak": 26}

	t.Run("Year", func(t *testing.T) {
		got := SeasonNetTargets(models.NetGoal{Mode: models.GoalPerYear, PerYear: 40000}, in.Seasonality, booked)
		assert.Equal(t, map[string]float64{
			"Deep Low": 4364, "Low": 9273, "Early or Late": 10000, "Season": 11636, "Peak": 4727,
		}, got)
	})

	t.Run("MonthAnnualized", func(t *testing.T) {
		got := SeasonNetTargets(models.NetGoal{Mode: models.GoalPerMonth, PerMonth: 3500}, in.Seasonality, booked)
		assert.Equal(t, 10500.0, got["Early or Late"])
		assert.Equal(t, 4964.0, got["Peak"])
	})

	t.Run("PerSeasonVerbatim", func(t *testing.T) {
		goal := models.NetGoal{Mode: models.GoalPerSeason, PerSeason: map[string]float64{"Peak": 9000, "Low": 1234.5}}
		got := SeasonNetTargets(goal, in.Seasonality, booked)
		assert.Equal(t, 9000.0, got["Peak"])
		assert.Equal(t, 1234.5, got["Low"])
		assert.Equal(t, 0.0, got["Season"])
	})

	// An empty per-season map annualizes to a zero base, so every target is zero.
	t.Run("PerSeasonEmptyMapYieldsZero", func(t *testing.T) {
		goal := models.NetGoal{Mode: models.GoalPerSeason, PerSeason: map[string]float64{}, PerYear: 40000}
		got := SeasonNetTargets(goal, in.Seasonality, booked)
		for _, s := range in.Seasonality.Types {
			assert.Zero(t, got[s], s)
		}
	})
}

func TestPerNightTargets(t *testing.T) {
	in := singleSeasonInputs()
	nights := map[string]models.DayNights{"All": {Weekday: 153, Weekend: 55, Holiday: 11}}

	t.Run("FloorsPerNight", func(t *testing.T) {
		got := PerNightTargets(in.Seasonality, nights, map[string]float64{"All": 36500})["All"]
		assert.Equal(t, 166.0, got.Weekday)
		assert.Equal(t, 166.0, got.Weekend)
		assert.Equal(t, 166.0, got.Holiday)

		rebuilt := got.Weekday*153 + got.Weekend*55 + got.Holiday*11
		assert.LessOrEqual(t, rebuilt, 36500.0)
		assert.InDelta(t, 36500, rebuilt, 219)
	})

	t.Run("ZeroNightBucket", func(t *testing.T) {
		empty := map[string]models.DayNights{"All": {Weekday: 10, Weekend: 0, Holiday: 0}}
		got := PerNightTargets(in.Seasonality, empty, map[string]float64{"All": 1000})["All"]
		assert.Equal(t, 100.0, got.Weekday)
		assert.Zero(t, got.Weekend)
		assert.Zero(t, got.Holiday)
	})

	t.Run("AtLeastOneWhenBooked", func(t *testing.T) {
		got := PerNightTargets(in.Seasonality, nights, map[string]float64{"All": 0})["All"]
		assert.Equal(t, 1.0, got.Weekday)
		assert.Equal(t, 1.0, got.Holiday)
	})
}
