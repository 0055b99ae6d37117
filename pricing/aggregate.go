package pricing

import (
	"strconv"

	"airbnb-pricing/models"
)

// ExportHeader is the fixed column order of the flat export
var ExportHeader = []string{
	"Platform", "Season", "DayType", "DP", "Gross", "GuestPrice", "Net",
	"Nights", "GrossTotal", "GuestTotal", "NetTotal",
}

// FindRow looks up a single cell. The bool is false when the table has no such row.
func FindRow(rows []models.PriceRow, platform models.PlatformKey, season string, dt models.DayType) (models.PriceRow, bool) {
	for _, r := range rows {
		if r.Platform == platform && r.Season == season && r.DayType == dt {
			return r, true
		}
	}
	return models.PriceRow{}, false
}

// Aggregate sums nights and per-night figures times nights for one platform,
// per season and for the whole year
func Aggregate(rows []models.PriceRow, platform models.PlatformKey, seasonality models.Seasonality, nights map[string]models.DayNights) models.Totals {
	totals := models.Totals{
		Platform: platform,
		BySeason: make(map[string]models.SeasonTotals, len(seasonality.Types)),
	}
	for _, s := range seasonality.Types {
		totals.BySeason[s] = models.SeasonTotals{}
	}

	for _, r := range rows {
		if r.Platform != platform {
			continue
		}
		n := nights[r.Season].Get(r.DayType)
		nf := float64(n)

		st := totals.BySeason[r.Season]
		st.Nights += n
		st.Gross += r.Gross * nf
		st.Guest += r.GuestPrice * nf
		st.Net += r.Net * nf
		totals.BySeason[r.Season] = st

		totals.Grand.Nights += n
		totals.Grand.Gross += r.Gross * nf
		totals.Grand.Guest += r.GuestPrice * nf
		totals.Grand.Net += r.Net * nf
	}
	return totals
}

// ExportRecords flattens the table for one platform in season order, then
// weekday, weekend, holiday. Missing cells are skipped.
func ExportRecords(rows []models.PriceRow, platform models.PlatformKey, seasonality models.Seasonality, nights map[string]models.DayNights) []models.ExportRecord {
	var out []models.ExportRecord
	for _, s := range seasonality.Types {
		for _, dt := range models.DayTypes {
			r, ok := FindRow(rows, platform, s, dt)
			if !ok {
				continue
			}
			n := nights[s].Get(dt)
			nf := float64(n)
			out = append(out, models.ExportRecord{
				Platform:   platform,
				Season:     s,
				DayType:    dt,
				DP:         r.DP,
				Gross:      r.Gross,
				GuestPrice: r.GuestPrice,
				Net:        r.Net,
				Nights:     n,
				GrossTotal: r.Gross * nf,
				GuestTotal: r.GuestPrice * nf,
				NetTotal:   r.Net * nf,
			})
		}
	}
	return out
}

// RecordFields renders a record as export strings: human platform label and
// plain numbers without currency symbols or grouping
func RecordFields(rec models.ExportRecord) []string {
	return []string{
		rec.Platform.Label(),
		rec.Season,
		string(rec.DayType),
		formatNumber(rec.DP),
		formatNumber(rec.Gross),
		formatNumber(rec.GuestPrice),
		formatNumber(rec.Net),
		strconv.Itoa(rec.Nights),
		formatNumber(rec.GrossTotal),
		formatNumber(rec.GuestTotal),
		formatNumber(rec.NetTotal),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
