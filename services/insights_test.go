package services

import (
	"bytes"
	"strings"
	"testing"

	"airbnb-pricing/models"
	"airbnb-pricing/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioReport(t *testing.T, mutate func(p *Planner)) *models.InsightReport {
	t.Helper()
	p := newPlanner()
	if mutate != nil {
		mutate(p)
	}
	v, err := p.Recompute()
	require.NoError(t, err)
	return NewInsightService(utils.NewNopLogger()).Generate(v, models.Airbnb, "EUR")
}

func TestGenerate(t *testing.T) {
	report := scenarioReport(t, nil)

	assert.Equal(t, 36500.0, report.Goal)
	assert.Equal(t, 219, report.Totals.Grand.Nights)
	assert.Equal(t, 166.0*219, report.Totals.Grand.Net)
	assert.Equal(t, 166.0*219-36500, report.Drift)
	assert.Equal(t, 166.0, report.AvgNetPerNight)
	assert.Equal(t, "All", report.BestSeason)
	assert.Zero(t, report.LockedOverrides)
	assert.Nil(t, report.SuggestedSplit)

	require.Len(t, report.Preview, 3)
	assert.Equal(t, models.PreviewLine{DayType: models.Weekday, DP: 100, Gross: 120, GuestPrice: 137, Net: 94}, report.Preview[0])
}

func TestGenerateWithCalendarAndOverrides(t *testing.T) {
	report := scenarioReport(t, func(p *Planner) {
		p.Update(func(in *models.Inputs) {
			in.Calendar = []models.MergedHoliday{{Date: "2023-12-25", Enabled: true, Buffer: 1}}
		})
		p.SetOverrideGross(weekdayKey, "150")
	})

	assert.Equal(t, 1, report.LockedOverrides)
	require.NotNil(t, report.SuggestedSplit)
	assert.Equal(t, 365, report.CalendarMix["All"].Total())
	assert.Equal(t, 3, report.CalendarMix["All"].Holiday)
}

func TestGenerateUnknownPlatform(t *testing.T) {
	p := newPlanner()
	v, err := p.Recompute()
	require.NoError(t, err)

	report := NewInsightService(utils.NewNopLogger()).Generate(v, models.VRBO, "EUR")
	assert.Empty(t, report.Rows)
	assert.Zero(t, report.Totals.Grand.Nights)
	assert.Empty(t, report.Preview)
}

func TestFprintInsightReport(t *testing.T) {
	var buf bytes.Buffer
	FprintInsightReport(&buf, scenarioReport(t, nil))
	out := buf.String()

	assert.Contains(t, out, "NIGHTLY PRICE PLAN")
	assert.Contains(t, out, "Airbnb 2023")
	assert.Contains(t, out, "FEE PREVIEW (DP 100)")
	assert.Contains(t, out, "EUR")
	assert.NotContains(t, out, noData)
}

func TestReportMissingRows(t *testing.T) {
	report := scenarioReport(t, nil)
	report.Seasons = append(report.Seasons, "Ghost")

	var buf bytes.Buffer
	FprintInsightReport(&buf, report)
	assert.Equal(t, 3, strings.Count(buf.String(), noData))

	md := RenderMarkdown(report)
	assert.Equal(t, 3, strings.Count(md, noData))
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(scenarioReport(t, nil))

	assert.True(t, strings.HasPrefix(md, "# Nightly prices: Airbnb 2023"))
	assert.Contains(t, md, "| All | weekday | 178 | 214 | 244 | 166 | 153 |")
	assert.Contains(t, md, "| All | holiday | 127 | 214 | 244 | 166 | 11 |")
	assert.Contains(t, md, "## Totals")
	assert.Contains(t, md, "| **Total** | 219 |")
}
