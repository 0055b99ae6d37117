package holidays

import (
	"sort"
	"strings"

	"airbnb-pricing/models"
)

// preferredNames are keywords that make a name win for a shared date
var preferredNames = []string{"christmas", "new year", "easter", "independence", "labor"}

// Merge collapses raw entries into one record per date.
//
// Observed entries are dropped unless settings.ApplyToObserved is set. The
// buffer is the largest suggestion for the date, replaced by a per-date
// preference when present and capped at settings.MaxBufferDays. Output is
// sorted by date.
func Merge(entries []models.HolidayEntry, settings models.HolidaySettings, perDate map[string]models.HolidayPreference) []models.MergedHoliday {
	byDate := make(map[string][]models.HolidayEntry)
	var dates []string
	for _, e := range entries {
		if e.IsObserved && !settings.ApplyToObserved {
			continue
		}
		if _, ok := byDate[e.Date]; !ok {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	sort.Strings(dates)

	out := make([]models.MergedHoliday, 0, len(dates))
	for _, date := range dates {
		group := byDate[date]

		buffer := 0
		var countries []string
		seen := make(map[string]bool)
		for _, e := range group {
			buffer = max(buffer, e.SuggestBufferDays)
			if !seen[e.Country] {
				seen[e.Country] = true
				countries = append(countries, e.Country)
			}
		}

		enabled := true
		if pref, ok := perDate[date]; ok {
			if pref.Buffer != nil {
				buffer = *pref.Buffer
			}
			if pref.Enabled != nil {
				enabled = *pref.Enabled
			}
		}
		buffer = max(0, min(buffer, settings.MaxBufferDays))

		out = append(out, models.MergedHoliday{
			Date:      date,
			Name:      pickName(group),
			Countries: countries,
			Enabled:   enabled,
			Buffer:    buffer,
		})
	}
	return out
}

// pickName returns the first name, in input order, that contains any
// preferred keyword, else the first name
func pickName(group []models.HolidayEntry) string {
	for _, e := range group {
		name := strings.ToLower(e.Name)
		for _, key := range preferredNames {
			if strings.Contains(name, key) {
				return e.Name
			}
		}
	}
	if len(group) == 0 {
		return ""
	}
	return group[0].Name
}
