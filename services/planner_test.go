package services

import (
	"sync"
	"testing"

	"airbnb-pricing/models"
	"airbnb-pricing/pricing"
	"airbnb-pricing/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanner() *Planner {
	return NewPlanner(scenarioInputs(), utils.NewNopLogger())
}

func weekdayRow(t *testing.T, v *View) models.PriceRow {
	t.Helper()
	row, ok := pricing.FindRow(v.Rows, models.Airbnb, "All", models.Weekday)
	require.True(t, ok)
	return row
}

func TestPlannerRecompute(t *testing.T) {
	p := newPlanner()
	v, err := p.Recompute()
	require.NoError(t, err)

	row := weekdayRow(t, v)
	assert.Equal(t, 178.0, row.DP)
	assert.Equal(t, 214.0, row.Gross)
	assert.NotEmpty(t, v.State.Fingerprint)
	assert.Len(t, v.Table(models.Airbnb), 3)
	assert.Empty(t, v.Table(models.Booking))
	assert.Equal(t, 219, v.Totals(models.Airbnb).Grand.Nights)
	assert.Len(t, v.Records(models.Airbnb), 3)
}

func TestPlannerMemo(t *testing.T) {
	p := newPlanner()
	first, err := p.Recompute()
	require.NoError(t, err)
	second, err := p.Recompute()
	require.NoError(t, err)
	assert.Same(t, first.State, second.State)

	p.Update(func(in *models.Inputs) { in.NetGoal.PerYear = 40000 })
	third, err := p.Recompute()
	require.NoError(t, err)
	assert.NotSame(t, first.State, third.State)
	assert.NotEqual(t, first.State.Fingerprint, third.State.Fingerprint)

	// overrides do not invalidate the memo but still show up in the rows
	require.True(t, p.SetOverrideGross(weekdayKey, "150"))
	fourth, err := p.Recompute()
	require.NoError(t, err)
	assert.Same(t, third.State, fourth.State)
	assert.Equal(t, 150.0, weekdayRow(t, fourth).Gross)
}

func TestPlannerUpdateIsolation(t *testing.T) {
	p := newPlanner()
	in, _ := p.Snapshot()
	in.Platforms[models.Airbnb] = models.FeeProfile{}

	again, _ := p.Snapshot()
	assert.Equal(t, 14.0, again.Platforms[models.Airbnb].GuestFeePct)
}

func TestSetOverrideGross(t *testing.T) {
	p := newPlanner()

	for _, raw := range []string{"abc", "0", "-5", "NaN"} {
		assert.False(t, p.SetOverrideGross(weekdayKey, raw), raw)
	}
	_, ov := p.Snapshot()
	assert.Empty(t, ov)

	require.True(t, p.SetOverrideGross(weekdayKey, "150"))
	_, ov = p.Snapshot()
	assert.Equal(t, models.Override{Gross: 150, Locked: true}, ov[weekdayKey])

	v, err := p.Recompute()
	require.NoError(t, err)
	row := weekdayRow(t, v)
	assert.Equal(t, 150.0, row.Gross)
	assert.Equal(t, 178.0, row.DP)

	// editing an unlocked override keeps it unlocked
	_, err = p.SetOverrideLock(weekdayKey, false)
	require.NoError(t, err)
	require.True(t, p.SetOverrideGross(weekdayKey, "160"))
	_, ov = p.Snapshot()
	assert.Equal(t, models.Override{Gross: 160, Locked: false}, ov[weekdayKey])

	v, err = p.Recompute()
	require.NoError(t, err)
	assert.Equal(t, 214.0, weekdayRow(t, v).Gross)
}

func TestSetOverrideLock(t *testing.T) {
	p := newPlanner()

	ok, err := p.SetOverrideLock(weekdayKey, true)
	require.NoError(t, err)
	require.True(t, ok)
	_, ov := p.Snapshot()
	assert.Equal(t, models.Override{Gross: 214, Locked: true}, ov[weekdayKey])

	missing := models.OverrideKey{Platform: models.Airbnb, Season: "Nope", DayType: models.Weekday}
	ok, err = p.SetOverrideLock(missing, true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearOverride(t *testing.T) {
	p := newPlanner()
	require.True(t, p.SetOverrideGross(weekdayKey, "150"))
	p.ClearOverride(weekdayKey)
	p.ClearOverride(weekdayKey)

	_, ov := p.Snapshot()
	assert.NotContains(t, ov, weekdayKey)

	v, err := p.Recompute()
	require.NoError(t, err)
	assert.Equal(t, 214.0, weekdayRow(t, v).Gross)
}

func TestPlannerConcurrentSnapshots(t *testing.T) {
	p := newPlanner()
	goals := []float64{36500, 40000, 50000}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			goal := goals[i%len(goals)]
			p.Update(func(in *models.Inputs) {
				in.NetGoal.PerYear = goal
				in.Occupancy.PerYearPct = goal / 1000
			})
		}(i)
		go func() {
			defer wg.Done()
			v, err := p.Recompute()
			if !assert.NoError(t, err) {
				return
			}
			// both fields come from the same edit, never a mix
			if v.Inputs.NetGoal.PerYear != 36500 || v.Inputs.Occupancy.PerYearPct != 60 {
				assert.Equal(t, v.Inputs.NetGoal.PerYear/1000, v.Inputs.Occupancy.PerYearPct)
			}
			assert.Equal(t, pricing.Recompute(v.Inputs).Rows, v.State.Rows)
		}()
	}
	wg.Wait()
}
