package pricing

import (
	"math"

	"airbnb-pricing/models"
)

// minDivisor keeps the inversions finite when fees reach 100%
const minDivisor = 0.0001

// Rates is a fee profile expressed as fractions
type Rates struct {
	Guest float64
	Host  float64
	VAT   float64
	Tax   float64
	Pad   float64 // 1 + discount padding
}

// RatesFor converts a percentage profile into fractions
func RatesFor(p models.FeeProfile) Rates {
	return Rates{
		Guest: p.GuestFeePct / 100,
		Host:  p.HostCommissionPct / 100,
		VAT:   p.VATPct / 100,
		Tax:   p.IncomeTaxPct / 100,
		Pad:   1 + p.DiscountPaddingPct/100,
	}
}

// keep is the fraction of gross that reaches the host
func (r Rates) keep() float64 {
	return (1 - r.Host) * (1 - r.VAT) * (1 - r.Tax)
}

// Prices are the forward-computed figures for one night
type Prices struct {
	Gross      float64
	GuestPrice float64
	Net        float64
}

// RoundToEven rounds to the nearest integer and bumps odd results up by one
func RoundToEven(x float64) float64 {
	r := round(x)
	if math.Mod(r, 2) != 0 {
		return r + 1
	}
	return r
}

// InverseGross finds the gross rate whose deductions leave targetNet
func InverseGross(targetNet float64, r Rates) float64 {
	return targetNet / math.Max(r.keep(), minDivisor)
}

// DeriveDP backs the base daily price out of a per-night net target
func DeriveDP(targetNet float64, r Rates, mult float64) float64 {
	return InverseGross(targetNet, r) / math.Max(r.Pad*mult, minDivisor)
}

// DisplayDP is the whole-unit DP shown in tables and exports
func DisplayDP(dpRaw float64) float64 {
	return math.Max(1, round(dpRaw))
}

// ForwardPrices computes gross, guest price and net from a base daily price
func ForwardPrices(dp float64, r Rates, mult float64) Prices {
	return FromGross(dp*r.Pad*mult, r)
}

// FromGross applies the forward rounding rules to a gross rate.
// Net multiplies the deductions onto gross one at a time, left to right;
// grouping them through keep() first can land a whole-number product one
// unit higher after the ceiling.
func FromGross(gross float64, r Rates) Prices {
	g := RoundToEven(gross)
	return Prices{
		Gross:      g,
		GuestPrice: math.Ceil(g * (1 + r.Guest)),
		Net:        math.Ceil(g * (1 - r.Host) * (1 - r.VAT) * (1 - r.Tax)),
	}
}

// Preview runs the forward model for a fixed base price
func Preview(p models.FeeProfile, mult, dp float64) Prices {
	return ForwardPrices(dp, RatesFor(p), mult)
}

// MultiplierFor picks the day-type multiplier. Holidays use the holiday
// settings multiplier, falling back to 1.4 when no settings are present.
func MultiplierFor(in models.Inputs, dt models.DayType) float64 {
	switch dt {
	case models.Weekday:
		return in.Seasonality.Multipliers.Weekday
	case models.Weekend:
		return in.Seasonality.Multipliers.Weekend
	default:
		if in.Holidays != nil {
			return in.Holidays.Multiplier
		}
		return models.DefaultHolidayMultiplier
	}
}

// ConfiguredPlatforms returns the platforms present in the inputs in table order
func ConfiguredPlatforms(in models.Inputs) []models.PlatformKey {
	out := make([]models.PlatformKey, 0, len(in.Platforms))
	for _, pk := range models.AllPlatforms {
		if _, ok := in.Platforms[pk]; ok {
			out = append(out, pk)
		}
	}
	return out
}

// BuildPriceTable derives one row per season, day type and platform
func BuildPriceTable(in models.Inputs, perNight map[string]models.DayAmounts) []models.PriceRow {
	platforms := ConfiguredPlatforms(in)
	rows := make([]models.PriceRow, 0, len(in.Seasonality.Types)*len(models.DayTypes)*len(platforms))

	for _, s := range in.Seasonality.Types {
		for _, dt := range models.DayTypes {
			mult := MultiplierFor(in, dt)
			target := perNight[s].Get(dt)
			for _, pk := range platforms {
				r := RatesFor(in.Platforms[pk])
				dpRaw := DeriveDP(target, r, mult)
				prices := ForwardPrices(dpRaw, r, mult)
				rows = append(rows, models.PriceRow{
					Season:     s,
					DayType:    dt,
					Platform:   pk,
					DP:         DisplayDP(dpRaw),
					Gross:      prices.Gross,
					GuestPrice: prices.GuestPrice,
					Net:        prices.Net,
				})
			}
		}
	}
	return rows
}
