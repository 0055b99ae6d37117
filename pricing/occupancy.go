package pricing

import (
	"math"

	"airbnb-pricing/models"
)

const (
	nightsPerYear        = 365
	defaultOccupancyPct  = 60.0
	unknownMonthFallback = 30
)

// round is round-half-up, matching the rounding used throughout the price table
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// BookedNights converts the occupancy settings into a booked-night total per season.
// Every configured season gets at least one night.
func BookedNights(in models.Inputs) map[string]int {
	seasonDays := SeasonDayCount(in.Seasonality, in.Year)
	out := make(map[string]int, len(in.Seasonality.Types))

	switch in.Occupancy.Mode {
	case models.OccupancyPerYear:
		yearNights := round(nightsPerYear * in.Occupancy.PerYearPct / 100)
		totalDays := 0
		for _, d := range seasonDays {
			totalDays += d
		}
		for _, s := range in.Seasonality.Types {
			weight := float64(seasonDays[s]) / float64(max(totalDays, 1))
			out[s] = max(1, int(round(yearNights*weight)))
		}

	case models.OccupancyPerSeason:
		for _, s := range in.Seasonality.Types {
			pct, ok := in.Occupancy.PerSeasonPct[s]
			if !ok {
				pct = defaultOccupancyPct
			}
			out[s] = max(1, int(round(float64(seasonDays[s])*pct/100)))
		}

	default: // perMonth
		for _, s := range in.Seasonality.Types {
			nights := 0
			for _, m := range in.Seasonality.Months[s] {
				pct, ok := in.Occupancy.PerMonthPct[m]
				if !ok {
					pct = defaultOccupancyPct
				}
				days := DaysInMonth(in.Year, m)
				if m.Index() < 0 {
					days = unknownMonthFallback
				}
				nights += int(round(float64(days) * pct / 100))
			}
			out[s] = max(1, nights)
		}
	}
	return out
}

// SplitNights divides each season's booked nights across day types.
// Weekday and weekend are rounded shares; holiday takes the remainder so the
// three buckets always add up to the season total. A split whose weekday and
// weekend shares overshoot the total is trimmed from weekend first.
func SplitNights(in models.Inputs, booked map[string]int) map[string]models.DayNights {
	out := make(map[string]models.DayNights, len(in.Seasonality.Types))
	for _, s := range in.Seasonality.Types {
		total, ok := booked[s]
		if !ok || total == 0 {
			total = 1
		}
		wkd := max(0, int(round(float64(total)*in.Split.Weekday)))
		wke := max(0, int(round(float64(total)*in.Split.Weekend)))
		if wkd > total {
			wkd = total
		}
		// Left alone, an overshooting split would report more nights than were
		// booked and push holiday to zero; trimming weekend keeps the sum exact.
		if wkd+wke > total {
			wke = total - wkd
		}
		hol := max(0, total-wkd-wke)
		out[s] = models.DayNights{Weekday: wkd, Weekend: wke, Holiday: hol}
	}
	return out
}
