package pricing

import (
	"testing"

	"airbnb-pricing/models"

	"github.com/stretchr/testify/assert"
)

func TestBookedNights(t *testing.T) {
	t.Run("PerYearSingleSeason", func(t *testing.T) {
		booked := BookedNights(singleSeasonInputs())
		assert.Equal(t, 219, booked["All"])
	})

	t.Run("PerYearWeightedByDays", func(t *testing.T) {
		in := fiveSeasonInputs()
		in.Occupancy = models.Occupancy{Mode: models.OccupancyPerYear, PerYearPct: 60}
		booked := BookedNights(in)
		assert.Equal(t, map[string]int{
			"Deep Low": 35, "Low": 55, "Early or Late": 55, "Season": 55, "Peak": 19,
		}, booked)
	})

	t.Run("PerSeason", func(t *testing.T) {
		booked := BookedNights(fiveSeasonInputs())
		assert.Equal(t, map[string]int{
			"Deep Low": 24, "Low": 51, "Early or Late": 55, "Season": 64, "Peak": 26,
		}, booked)
	})

	t.Run("PerSeasonDefaultsTo60", func(t *testing.T) {
		in := fiveSeasonInputs()
		in.Occupancy.PerSeasonPct = map[string]float64{}
		assert.Equal(t, 19, BookedNights(in)["Peak"]) // 31 * 0.6 = 18.6
	})

	t.Run("PerMonth", func(t *testing.T) {
		in := fiveSeasonInputs()
		in.Occupancy = models.Occupancy{
			Mode:        models.OccupancyPerMonth,
			PerMonthPct: map[models.Month]float64{models.Jan: 100},
		}
		booked := BookedNights(in)
		assert.Equal(t, 31+17, booked["Deep Low"])
		assert.Equal(t, 19, booked["Peak"])
	})

	t.Run("PerMonthUnknownTokenCountsThirtyDays", func(t *testing.T) {
		in := singleSeasonInputs()
		in.Seasonality.Months["All"] = []models.Month{"Foo"}
		in.Occupancy = models.Occupancy{Mode: models.OccupancyPerMonth}
		assert.Equal(t, 18, BookedNights(in)["All"])
	})

	t.Run("MinimumOneNight", func(t *testing.T) {
		in := fiveSeasonInputs()
		in.Seasonality.Types = append(in.Seasonality.Types, "Ghost")
		in.Occupancy.PerSeasonPct["Peak"] = 0

		booked := BookedNights(in)
		assert.Equal(t, 1, booked["Peak"])
		assert.Equal(t, 1, booked["Ghost"])

		in.Occupancy = models.Occupancy{Mode: models.OccupancyPerYear, PerYearPct: 60}
		assert.Equal(t, 1, BookedNights(in)["Ghost"])
	})
}

func TestSplitNights(t *testing.T) {
	in := singleSeasonInputs()

	t.Run("Scenario", func(t *testing.T) {
		nights := SplitNights(in, map[string]int{"All": 219})["All"]
		assert.Equal(t, 153, nights.Weekday)
		assert.Equal(t, 55, nights.Weekend)
		assert.Equal(t, 11, nights.Holiday)
	})

	t.Run("ConservationForAnySplit", func(t *testing.T) {
		splits := []models.BookingSplit{
			{Weekday: 0.7, Weekend: 0.25, Holiday: 0.05},
			{Weekday: 0.33, Weekend: 0.33, Holiday: 0.33},
			{Weekday: 0.5, Weekend: 0.1, Holiday: 0},
			{Weekday: 0, Weekend: 0, Holiday: 0},
			{Weekday: 1, Weekend: 1, Holiday: 1},
			{Weekday: 0.8, Weekend: 0.5, Holiday: 0.2},
		}
		for _, split := range splits {
			in.Split = split
			for total := 1; total <= 400; total++ {
				n := SplitNights(in, map[string]int{"All": total})["All"]
				assert.Equal(t, total, n.Total(), "split %+v total %d", split, total)
				assert.GreaterOrEqual(t, n.Weekday, 0)
				assert.GreaterOrEqual(t, n.Weekend, 0)
				assert.GreaterOrEqual(t, n.Holiday, 0)
			}
		}
	})

	t.Run("HolidayAbsorbsRounding", func(t *testing.T) {
		in.Split = models.BookingSplit{Weekday: 0.5, Weekend: 0.1, Holiday: 0}
		n := SplitNights(in, map[string]int{"All": 10})["All"]
		assert.Equal(t, models.DayNights{Weekday: 5, Weekend: 1, Holiday: 4}, n)
	})

	t.Run("OvershootTrimsWeekend", func(t *testing.T) {
		in.Split = models.BookingSplit{Weekday: 0.8, Weekend: 0.5}
		n := SplitNights(in, map[string]int{"All": 10})["All"]
		assert.Equal(t, models.DayNights{Weekday: 8, Weekend: 2, Holiday: 0}, n)
	})

	t.Run("MissingSeasonUsesOneNight", func(t *testing.T) {
		in.Split = models.BookingSplit{Weekday: 0.7, Weekend: 0.25, Holiday: 0.05}
		n := SplitNights(in, map[string]int{})["All"]
		assert.Equal(t, 1, n.Total())
	})
}
