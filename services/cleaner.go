package services

import (
	"math"
	"strconv"
	"strings"

	"airbnb-pricing/models"
	"airbnb-pricing/utils"
)

// Clamp ranges for user-entered values
const (
	minMultiplier        = 0.5
	maxMultiplier        = 3.0
	minHolidayMultiplier = 1.0
	maxHolidayMultiplier = 3.0
	maxBufferDays        = 3
)

// InputCleaner normalizes user input before it reaches the pricing engine.
// The engine assumes every value it sees has been through here.
type InputCleaner struct {
	logger *utils.Logger
}

// NewInputCleaner creates a new InputCleaner
func NewInputCleaner(logger *utils.Logger) *InputCleaner {
	return &InputCleaner{logger: logger}
}

// Clean returns a clamped copy of in
func (c *InputCleaner) Clean(in models.Inputs) models.Inputs {
	out := in.Clone()
	changed := 0
	track := func(before, after float64) float64 {
		if before != after {
			changed++
		}
		return after
	}

	for pk, profile := range out.Platforms {
		for _, f := range models.FeeFields {
			v := profile.Get(f)
			profile = profile.With(f, track(v, Pct(v)))
		}
		out.Platforms[pk] = profile
	}

	m := &out.Seasonality.Multipliers
	m.Weekday = track(m.Weekday, clamp(m.Weekday, minMultiplier, maxMultiplier))
	m.Weekend = track(m.Weekend, clamp(m.Weekend, minMultiplier, maxMultiplier))
	m.Holiday = track(m.Holiday, clamp(m.Holiday, minMultiplier, maxMultiplier))

	out.Occupancy.PerYearPct = track(out.Occupancy.PerYearPct, Pct(out.Occupancy.PerYearPct))
	for k, v := range out.Occupancy.PerSeasonPct {
		out.Occupancy.PerSeasonPct[k] = track(v, Pct(v))
	}
	for k, v := range out.Occupancy.PerMonthPct {
		out.Occupancy.PerMonthPct[k] = track(v, Pct(v))
	}

	out.NetGoal.PerYear = track(out.NetGoal.PerYear, nonNegative(out.NetGoal.PerYear))
	out.NetGoal.PerMonth = track(out.NetGoal.PerMonth, nonNegative(out.NetGoal.PerMonth))
	for k, v := range out.NetGoal.PerSeason {
		out.NetGoal.PerSeason[k] = track(v, nonNegative(v))
	}

	s := &out.Split
	s.Weekday = track(s.Weekday, Fraction(s.Weekday))
	s.Weekend = track(s.Weekend, Fraction(s.Weekend))
	s.Holiday = track(s.Holiday, Fraction(s.Holiday))

	if h := out.Holidays; h != nil {
		h.Multiplier = track(h.Multiplier, clamp(h.Multiplier, minHolidayMultiplier, maxHolidayMultiplier))
		buf := min(max(h.MaxBufferDays, 0), maxBufferDays)
		if buf != h.MaxBufferDays {
			changed++
		}
		h.MaxBufferDays = buf
	}

	if changed > 0 {
		c.logger.Warn("Clamped %d out-of-range input values", changed)
	}
	return out
}

// UpdateFee sets one fee field from raw text. Non-numeric text leaves the
// profile unchanged.
func (c *InputCleaner) UpdateFee(profile models.FeeProfile, field models.FeeField, raw string) models.FeeProfile {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		c.logger.Debug("Ignoring non-numeric %s: %q", field.Label(), raw)
		return profile
	}
	return profile.With(field, Pct(v))
}

// ParseGross parses an override gross rate. Anything that is not a positive
// number is rejected.
func ParseGross(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// Pct clamps a percentage to [0,100] and rounds it to one decimal
func Pct(v float64) float64 {
	return math.Floor(clamp(v, 0, 100)*10+0.5) / 10
}

// Fraction clamps a share to [0,1]
func Fraction(v float64) float64 {
	return clamp(v, 0, 1)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}
