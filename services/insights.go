package services

import (
	"airbnb-pricing/holidays"
	"airbnb-pricing/models"
	"airbnb-pricing/pricing"
	"airbnb-pricing/utils"
)

// previewDP is the base price the fee preview is shown at
const previewDP = 100

// InsightService summarizes a recomputed table for one platform
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate builds the report for platform from view
func (s *InsightService) Generate(view *View, platform models.PlatformKey, currency string) *models.InsightReport {
	in := view.Inputs
	report := &models.InsightReport{
		Platform:    platform,
		Currency:    currency,
		Year:        in.Year,
		Fingerprint: view.State.Fingerprint,
		Goal:        pricing.GoalFor(in, view.State),
		Seasons:     append([]string(nil), in.Seasonality.Types...),
		Rows:        view.Table(platform),
		Nights:      view.State.Nights,
		Totals:      view.Totals(platform),
	}

	if _, ok := in.Platforms[platform]; !ok {
		s.logger.Warn("Platform %s is not configured; report will be empty", platform.Label())
		return report
	}

	report.Drift = report.Totals.Grand.Net - report.Goal
	if n := report.Totals.Grand.Nights; n > 0 {
		report.AvgNetPerNight = report.Totals.Grand.Net / float64(n)
	}

	best := -1.0
	for _, season := range in.Seasonality.Types {
		if net := report.Totals.BySeason[season].Net; net > best {
			best = net
			report.BestSeason = season
		}
	}

	for key, ov := range view.Overrides {
		if key.Platform == platform && ov.Locked {
			report.LockedOverrides++
		}
	}

	profile := in.Platforms[platform]
	for _, dt := range models.DayTypes {
		p := pricing.Preview(profile, pricing.MultiplierFor(in, dt), previewDP)
		report.Preview = append(report.Preview, models.PreviewLine{
			DayType:    dt,
			DP:         previewDP,
			Gross:      p.Gross,
			GuestPrice: p.GuestPrice,
			Net:        p.Net,
		})
	}

	if len(in.Calendar) > 0 {
		report.CalendarMix = holidays.CalendarMix(in.Seasonality, in.Year, holidays.NewClassifier(in))
		report.SuggestedSplit = holidays.SuggestSplit(report.CalendarMix)
	}

	s.logger.Info("Generated insights for %s: net %.0f vs goal %.0f", platform.Label(), report.Totals.Grand.Net, report.Goal)
	return report
}
