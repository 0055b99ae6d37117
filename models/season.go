package models

// Month is a three-letter calendar month token ("Jan" … "Dec")
type Month string

const (
	Jan Month = "Jan"
	Feb Month = "Feb"
	Mar Month = "Mar"
	Apr Month = "Apr"
	May Month = "May"
	Jun Month = "Jun"
	Jul Month = "Jul"
	Aug Month = "Aug"
	Sep Month = "Sep"
	Oct Month = "Oct"
	Nov Month = "Nov"
	Dec Month = "Dec"
)

// AllMonths lists the month tokens in calendar order
var AllMonths = []Month{Jan, Feb, Mar, Apr, May, Jun, Jul, Aug, Sep, Oct, Nov, Dec}

// Index returns the zero-based calendar position of the month, or -1 for an unknown token
func (m Month) Index() int {
	for i, known := range AllMonths {
		if m == known {
			return i
		}
	}
	return -1
}

// DayType decides which multiplier applies to a night
type DayType string

const (
	Weekday DayType = "weekday"
	Weekend DayType = "weekend"
	Holiday DayType = "holiday"
)

// DayTypes is the fixed iteration order for day types
var DayTypes = []DayType{Weekday, Weekend, Holiday}

// Multipliers scale the padded base price per day type
type Multipliers struct {
	Weekday float64 `yaml:"weekday" json:"weekday"`
	Weekend float64 `yaml:"weekend" json:"weekend"`
	Holiday float64 `yaml:"holiday" json:"holiday"`
}

// Seasonality maps ordered season names to the months they cover.
// Months are expected to appear in at most one season; this is not enforced.
type Seasonality struct {
	Types       []string           `yaml:"types" json:"types"`
	Months      map[string][]Month `yaml:"months" json:"months"`
	Multipliers Multipliers        `yaml:"multipliers" json:"multipliers"`
}

// DayNights holds a night count per day type
type DayNights struct {
	Weekday int `json:"weekday"`
	Weekend int `json:"weekend"`
	Holiday int `json:"holiday"`
}

// Get returns the count for one day type
func (d DayNights) Get(dt DayType) int {
	switch dt {
	case Weekday:
		return d.Weekday
	case Weekend:
		return d.Weekend
	case Holiday:
		return d.Holiday
	}
	return 0
}

// Add returns a copy with n added to the given day type
func (d DayNights) Add(dt DayType, n int) DayNights {
	switch dt {
	case Weekday:
		d.Weekday += n
	case Weekend:
		d.Weekend += n
	case Holiday:
		d.Holiday += n
	}
	return d
}

// Total sums all three day types
func (d DayNights) Total() int {
	return d.Weekday + d.Weekend + d.Holiday
}

// DayAmounts holds a monetary amount per day type
type DayAmounts struct {
	Weekday float64 `json:"weekday"`
	Weekend float64 `json:"weekend"`
	Holiday float64 `json:"holiday"`
}

// Get returns the amount for one day type
func (d DayAmounts) Get(dt DayType) float64 {
	switch dt {
	case Weekday:
		return d.Weekday
	case Weekend:
		return d.Weekend
	case Holiday:
		return d.Holiday
	}
	return 0
}

// Set returns a copy with the given day type replaced
func (d DayAmounts) Set(dt DayType, v float64) DayAmounts {
	switch dt {
	case Weekday:
		d.Weekday = v
	case Weekend:
		d.Weekend = v
	case Holiday:
		d.Holiday = v
	}
	return d
}
