package pricing

import "airbnb-pricing/models"

func airbnbProfile() models.FeeProfile {
	return models.FeeProfile{
		GuestFeePct:        14,
		HostCommissionPct:  3,
		VATPct:             6,
		IncomeTaxPct:       15,
		DiscountPaddingPct: 20,
	}
}

// singleSeasonInputs is a one-season, whole-year scenario on Airbnb only
func singleSeasonInputs() models.Inputs {
	return models.Inputs{
		Currency: "EUR",
		Year:     2023,
		Platforms: map[models.PlatformKey]models.FeeProfile{
			models.Airbnb: airbnbProfile(),
		},
		Seasonality: models.Seasonality{
			Types:       []string{"All"},
			Months:      map[string][]models.Month{"All": models.AllMonths},
			Multipliers: models.Multipliers{Weekday: 1.0, Weekend: 1.2, Holiday: 1.4},
		},
		Occupancy: models.Occupancy{Mode: models.OccupancyPerYear, PerYearPct: 60},
		NetGoal:   models.NetGoal{Mode: models.GoalPerYear, PerYear: 36500},
		Split:     models.BookingSplit{Weekday: 0.7, Weekend: 0.25, Holiday: 0.05},
	}
}

// fiveSeasonInputs mirrors the default five-season setup
func fiveSeasonInputs() models.Inputs {
	in := singleSeasonInputs()
	in.Seasonality = models.Seasonality{
		Types: []string{"Deep Low", "Low", "Early or Late", "Season", "Peak"},
		Months: map[string][]models.Month{
			"Deep Low":      {models.Jan, models.Feb},
			"Low":           {models.Mar, models.Apr, models.Dec},
			"Early or Late": {models.May, models.Jun, models.Nov},
			"Season":        {models.Jul, models.Sep, models.Oct},
			"Peak":          {models.Aug},
		},
		Multipliers: models.Multipliers{Weekday: 1.0, Weekend: 1.2, Holiday: 1.4},
	}
	in.Platforms[models.Booking] = models.FeeProfile{HostCommissionPct: 16.4, VATPct: 6, IncomeTaxPct: 15, DiscountPaddingPct: 20}
	in.Platforms[models.VRBO] = models.FeeProfile{GuestFeePct: 12, HostCommissionPct: 8, VATPct: 6, IncomeTaxPct: 15, DiscountPaddingPct: 20}
	in.Occupancy = models.Occupancy{
		Mode:         models.OccupancyPerSeason,
		PerSeasonPct: map[string]float64{"Deep Low": 40, "Low": 55, "Early or Late": 60, "Season": 70, "Peak": 85},
	}
	return in
}
