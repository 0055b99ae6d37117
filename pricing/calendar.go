package pricing

import "airbnb-pricing/models"

var daysPerMonth = map[models.Month]int{
	models.Jan: 31, models.Feb: 28, models.Mar: 31, models.Apr: 30,
	models.May: 31, models.Jun: 30, models.Jul: 31, models.Aug: 31,
	models.Sep: 30, models.Oct: 31, models.Nov: 30, models.Dec: 31,
}

// IsLeap reports whether year is a Gregorian leap year
func IsLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in month for year. Unknown tokens give 0.
func DaysInMonth(year int, month models.Month) int {
	if month == models.Feb && IsLeap(year) {
		return 29
	}
	return daysPerMonth[month]
}

// SeasonDayCount sums the calendar days of every season's months
func SeasonDayCount(seasonality models.Seasonality, year int) map[string]int {
	out := make(map[string]int, len(seasonality.Types))
	for _, season := range seasonality.Types {
		total := 0
		for _, m := range seasonality.Months[season] {
			total += DaysInMonth(year, m)
		}
		out[season] = total
	}
	return out
}
