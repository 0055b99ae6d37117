package holidays

import (
	"time"

	"airbnb-pricing/models"
)

const dateLayout = "2006-01-02"

// DateSet holds calendar dates as YYYY-MM-DD
type DateSet map[string]struct{}

// Has reports whether the date is in the set
func (s DateSet) Has(t time.Time) bool {
	_, ok := s[t.Format(dateLayout)]
	return ok
}

// Expand turns enabled holidays into the set of dates priced as holidays,
// including buffer days on both sides. Unparseable dates are skipped.
func Expand(merged []models.MergedHoliday) DateSet {
	set := make(DateSet)
	for _, h := range merged {
		if !h.Enabled {
			continue
		}
		day, err := time.Parse(dateLayout, h.Date)
		if err != nil {
			continue
		}
		for off := -h.Buffer; off <= h.Buffer; off++ {
			set[day.AddDate(0, 0, off).Format(dateLayout)] = struct{}{}
		}
	}
	return set
}

// Classifier assigns a day type to concrete dates
type Classifier struct {
	holidays          DateSet
	weekend           map[time.Weekday]bool
	weekendMultiplier float64
	holidayMultiplier float64
}

// NewClassifier builds a classifier from the merged calendar in the inputs.
// Saturday and Sunday are weekend days unless others are given.
func NewClassifier(in models.Inputs, weekendDays ...time.Weekday) *Classifier {
	if len(weekendDays) == 0 {
		weekendDays = []time.Weekday{time.Saturday, time.Sunday}
	}
	weekend := make(map[time.Weekday]bool, len(weekendDays))
	for _, d := range weekendDays {
		weekend[d] = true
	}
	holidayMult := models.DefaultHolidayMultiplier
	if in.Holidays != nil {
		holidayMult = in.Holidays.Multiplier
	}
	return &Classifier{
		holidays:          Expand(in.Calendar),
		weekend:           weekend,
		weekendMultiplier: in.Seasonality.Multipliers.Weekend,
		holidayMultiplier: holidayMult,
	}
}

// Classify returns the day type for t. A date that is both a weekend day and
// a holiday takes whichever type carries the higher multiplier.
func (c *Classifier) Classify(t time.Time) models.DayType {
	holiday := c.holidays.Has(t)
	weekend := c.weekend[t.Weekday()]
	switch {
	case holiday && weekend:
		if c.weekendMultiplier > c.holidayMultiplier {
			return models.Weekend
		}
		return models.Holiday
	case holiday:
		return models.Holiday
	case weekend:
		return models.Weekend
	}
	return models.Weekday
}

// CalendarMix counts the calendar days of each season by day type for year
func CalendarMix(seasonality models.Seasonality, year int, c *Classifier) map[string]models.DayNights {
	seasonsByMonth := make(map[models.Month][]string)
	for _, s := range seasonality.Types {
		for _, m := range seasonality.Months[s] {
			seasonsByMonth[m] = append(seasonsByMonth[m], s)
		}
	}

	mix := make(map[string]models.DayNights, len(seasonality.Types))
	for _, s := range seasonality.Types {
		mix[s] = models.DayNights{}
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := start; day.Year() == year; day = day.AddDate(0, 0, 1) {
		month := models.AllMonths[day.Month()-1]
		dt := c.Classify(day)
		for _, s := range seasonsByMonth[month] {
			mix[s] = mix[s].Add(dt, 1)
		}
	}
	return mix
}

// SuggestSplit converts calendar counts into booking split fractions.
// Returns nil when there are no days to split.
func SuggestSplit(mix map[string]models.DayNights) *models.BookingSplit {
	var total models.DayNights
	for _, n := range mix {
		total.Weekday += n.Weekday
		total.Weekend += n.Weekend
		total.Holiday += n.Holiday
	}
	sum := float64(total.Total())
	if sum == 0 {
		return nil
	}
	return &models.BookingSplit{
		Weekday: float64(total.Weekday) / sum,
		Weekend: float64(total.Weekend) / sum,
		Holiday: float64(total.Holiday) / sum,
	}
}
