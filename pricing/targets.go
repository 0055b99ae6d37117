package pricing

import (
	"math"

	"airbnb-pricing/models"
)

// SeasonNetTargets allocates the net income goal to seasons.
//
// An explicit per-season goal is used verbatim when it has at least one
// entry. Otherwise the annualized goal is spread by each season's share of
// booked nights. A per-season goal with an empty map annualizes to zero.
func SeasonNetTargets(goal models.NetGoal, seasonality models.Seasonality, booked map[string]int) map[string]float64 {
	out := make(map[string]float64, len(seasonality.Types))
	if goal.Mode == models.GoalPerSeason && len(goal.PerSeason) > 0 {
		for _, s := range seasonality.Types {
			out[s] = goal.PerSeason[s]
		}
		return out
	}

	totalBooked := 0
	for _, n := range booked {
		totalBooked += n
	}

	base := 0.0
	switch goal.Mode {
	case models.GoalPerYear:
		base = goal.PerYear
	case models.GoalPerMonth:
		base = goal.PerMonth * 12
	}

	for _, s := range seasonality.Types {
		weight := float64(booked[s]) / float64(max(totalBooked, 1))
		out[s] = round(base * weight)
	}
	return out
}

// PerNightTargets turns season targets into a net target per booked night for
// each day type. Remainders are floored away, so totals rebuilt from these
// figures land slightly under the goal.
func PerNightTargets(seasonality models.Seasonality, nights map[string]models.DayNights, targets map[string]float64) map[string]models.DayAmounts {
	out := make(map[string]models.DayAmounts, len(seasonality.Types))
	for _, s := range seasonality.Types {
		counts := nights[s]
		seasonNet := targets[s]
		total := counts.Total()
		if total == 0 {
			total = 1
		}

		var perNight models.DayAmounts
		for _, dt := range models.DayTypes {
			n := counts.Get(dt)
			if n <= 0 {
				continue
			}
			share := float64(n) / float64(total)
			bucket := seasonNet * share
			perNight = perNight.Set(dt, math.Max(1, math.Floor(bucket/float64(n))))
		}
		out[s] = perNight
	}
	return out
}
