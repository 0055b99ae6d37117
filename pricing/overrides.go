package pricing

import "airbnb-pricing/models"

// ApplyOverrides returns a copy of rows with every locked override applied.
// A locked cell keeps its DP; gross comes from the pinned value and guest
// price and net are recomputed from it with the platform's fees.
func ApplyOverrides(rows []models.PriceRow, overrides models.Overrides, platforms map[models.PlatformKey]models.FeeProfile) []models.PriceRow {
	out := make([]models.PriceRow, len(rows))
	for i, r := range rows {
		out[i] = r
		ov, ok := overrides[r.Key()]
		if !ok || !ov.Locked {
			continue
		}
		prices := FromGross(ov.Gross, RatesFor(platforms[r.Platform]))
		out[i].Gross = prices.Gross
		out[i].GuestPrice = prices.GuestPrice
		out[i].Net = prices.Net
	}
	return out
}
