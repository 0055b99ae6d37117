package services

import "airbnb-pricing/models"

// scenarioInputs is the one-season 36500/60% Airbnb scenario
func scenarioInputs() models.Inputs {
	return models.Inputs{
		Currency: "EUR",
		Year:     2023,
		Platforms: map[models.PlatformKey]models.FeeProfile{
			models.Airbnb: {GuestFeePct: 14, HostCommissionPct: 3, VATPct: 6, IncomeTaxPct: 15, DiscountPaddingPct: 20},
		},
		Seasonality: models.Seasonality{
			Types:       []string{"All"},
			Months:      map[string][]models.Month{"All": models.AllMonths},
			Multipliers: models.Multipliers{Weekday: 1.0, Weekend: 1.2, Holiday: 1.4},
		},
		Occupancy: models.Occupancy{Mode: models.OccupancyPerYear, PerYearPct: 60},
		NetGoal:   models.NetGoal{Mode: models.GoalPerYear, PerYear: 36500},
		Split:     models.BookingSplit{Weekday: 0.7, Weekend: 0.25, Holiday: 0.05},
		Holidays:  &models.HolidaySettings{Multiplier: 1.4, MaxBufferDays: 2},
	}
}

var weekdayKey = models.OverrideKey{Platform: models.Airbnb, Season: "All", DayType: models.Weekday}
