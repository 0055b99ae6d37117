package models

// OccupancyMode selects which occupancy percentages are active
type OccupancyMode string

const (
	OccupancyPerYear   OccupancyMode = "perYear"
	OccupancyPerSeason OccupancyMode = "perSeason"
	OccupancyPerMonth  OccupancyMode = "perMonth"
)

// Occupancy is the expected share of nights booked. Only the fields for Mode are read.
type Occupancy struct {
	Mode         OccupancyMode      `yaml:"mode" json:"mode" validate:"oneof=perYear perSeason perMonth"`
	PerYearPct   float64            `yaml:"per_year_pct" json:"per_year_pct"`
	PerSeasonPct map[string]float64 `yaml:"per_season_pct" json:"per_season_pct"`
	PerMonthPct  map[Month]float64  `yaml:"per_month_pct" json:"per_month_pct"`
}

// NetGoalMode selects how the net income goal is expressed
type NetGoalMode string

const (
	GoalPerYear   NetGoalMode = "year"
	GoalPerMonth  NetGoalMode = "month"
	GoalPerSeason NetGoalMode = "perSeason"
)

// NetGoal is the host's desired net income
type NetGoal struct {
	Mode      NetGoalMode        `yaml:"mode" json:"mode" validate:"oneof=year month perSeason"`
	PerYear   float64            `yaml:"per_year" json:"per_year"`
	PerMonth  float64            `yaml:"per_month" json:"per_month"`
	PerSeason map[string]float64 `yaml:"per_season" json:"per_season"`
}

// BookingSplit gives the share of booked nights per day type.
// The fractions are applied as given; holiday absorbs whatever is left.
type BookingSplit struct {
	Weekday float64 `yaml:"weekday" json:"weekday"`
	Weekend float64 `yaml:"weekend" json:"weekend"`
	Holiday float64 `yaml:"holiday" json:"holiday"`
}

// Total sums the three fractions
func (s BookingSplit) Total() float64 {
	return s.Weekday + s.Weekend + s.Holiday
}

// DefaultHolidayMultiplier applies when no holiday settings are configured
const DefaultHolidayMultiplier = 1.4

// HolidaySettings configures how the merged holiday calendar is built and priced
type HolidaySettings struct {
	Multiplier      float64  `yaml:"multiplier" json:"multiplier"`
	ApplyToObserved bool     `yaml:"apply_to_observed" json:"apply_to_observed"`
	MaxBufferDays   int      `yaml:"max_buffer_days" json:"max_buffer_days"`
	ActiveCountries []string `yaml:"active_countries" json:"active_countries"`
}

// Inputs is the complete, immutable input set for one recomputation
type Inputs struct {
	Currency    string                     `json:"currency"`
	Year        int                        `json:"year"`
	Platforms   map[PlatformKey]FeeProfile `json:"platforms"`
	Seasonality Seasonality                `json:"seasonality"`
	Occupancy   Occupancy                  `json:"occupancy"`
	NetGoal     NetGoal                    `json:"net_goal"`
	Split       BookingSplit               `json:"split"`
	Holidays    *HolidaySettings           `json:"holidays,omitempty"`
	Calendar    []MergedHoliday            `json:"calendar,omitempty"`
}

// Clone returns a deep copy so callers can edit without touching shared state
func (in Inputs) Clone() Inputs {
	out := in

	out.Platforms = make(map[PlatformKey]FeeProfile, len(in.Platforms))
	for k, v := range in.Platforms {
		out.Platforms[k] = v
	}

	out.Seasonality.Types = append([]string(nil), in.Seasonality.Types...)
	out.Seasonality.Months = make(map[string][]Month, len(in.Seasonality.Months))
	for k, v := range in.Seasonality.Months {
		out.Seasonality.Months[k] = append([]Month(nil), v...)
	}

	out.Occupancy.PerSeasonPct = cloneFloatMap(in.Occupancy.PerSeasonPct)
	if in.Occupancy.PerMonthPct != nil {
		out.Occupancy.PerMonthPct = make(map[Month]float64, len(in.Occupancy.PerMonthPct))
		for k, v := range in.Occupancy.PerMonthPct {
			out.Occupancy.PerMonthPct[k] = v
		}
	}
	out.NetGoal.PerSeason = cloneFloatMap(in.NetGoal.PerSeason)

	if in.Holidays != nil {
		h := *in.Holidays
		h.ActiveCountries = append([]string(nil), in.Holidays.ActiveCountries...)
		out.Holidays = &h
	}

	if in.Calendar != nil {
		out.Calendar = make([]MergedHoliday, len(in.Calendar))
		for i, h := range in.Calendar {
			h.Countries = append([]string(nil), h.Countries...)
			out.Calendar[i] = h
		}
	}
	return out
}

func cloneFloatMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// PriceRow is one derived (season, day type, platform) price cell.
// Monetary values are whole currency units.
type PriceRow struct {
	Season     string      `json:"season"`
	DayType    DayType     `json:"day_type"`
	Platform   PlatformKey `json:"platform"`
	DP         float64     `json:"dp"`
	Gross      float64     `json:"gross"`
	GuestPrice float64     `json:"guest_price"`
	Net        float64     `json:"net"`
}

// Key returns the override key addressing this row
func (r PriceRow) Key() OverrideKey {
	return OverrideKey{Platform: r.Platform, Season: r.Season, DayType: r.DayType}
}

// OverrideKey addresses a single price cell
type OverrideKey struct {
	Platform PlatformKey
	Season   string
	DayType  DayType
}

// Override pins a gross rate for one cell. Only locked overrides take effect.
type Override struct {
	Gross  float64 `json:"gross"`
	Locked bool    `json:"locked"`
}

// Overrides is the user's set of pinned cells
type Overrides map[OverrideKey]Override

// Clone returns an independent copy
func (o Overrides) Clone() Overrides {
	out := make(Overrides, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// DerivedState is everything one recomputation produces
type DerivedState struct {
	Year            int                   `json:"year"`
	SeasonDays      map[string]int        `json:"season_days"`
	BookedNights    map[string]int        `json:"booked_nights"`
	Nights          map[string]DayNights  `json:"nights"`
	SeasonTargets   map[string]float64    `json:"season_targets"`
	PerNightTargets map[string]DayAmounts `json:"per_night_targets"`
	Rows            []PriceRow            `json:"rows"`
	Fingerprint     string                `json:"fingerprint,omitempty"`
}
