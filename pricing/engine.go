// Package pricing turns a net income goal into platform nightly prices.
//
// Every function here is pure: results depend only on the arguments, nothing
// is cached and no errors are raised. Hazards such as fees adding up to 100%
// or empty buckets are neutralized with floors instead.
package pricing

import "airbnb-pricing/models"

// Recompute runs the full derivation chain for one input set
func Recompute(in models.Inputs) *models.DerivedState {
	booked := BookedNights(in)
	nights := SplitNights(in, booked)
	targets := SeasonNetTargets(in.NetGoal, in.Seasonality, booked)
	perNight := PerNightTargets(in.Seasonality, nights, targets)

	return &models.DerivedState{
		Year:            in.Year,
		SeasonDays:      SeasonDayCount(in.Seasonality, in.Year),
		BookedNights:    booked,
		Nights:          nights,
		SeasonTargets:   targets,
		PerNightTargets: perNight,
		Rows:            BuildPriceTable(in, perNight),
	}
}

// GoalFor returns the annual net goal implied by the inputs
func GoalFor(in models.Inputs, state *models.DerivedState) float64 {
	switch in.NetGoal.Mode {
	case models.GoalPerYear:
		return in.NetGoal.PerYear
	case models.GoalPerMonth:
		return in.NetGoal.PerMonth * 12
	}
	total := 0.0
	for _, s := range in.Seasonality.Types {
		total += state.SeasonTargets[s]
	}
	return total
}
