package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"airbnb-pricing/models"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// Scenario is the YAML description of one pricing setup
type Scenario struct {
	Currency    string                                   `yaml:"currency" validate:"required,iso4217"`
	Year        int                                      `yaml:"year" validate:"gte=1970,lte=2200"`
	Platforms   map[models.PlatformKey]models.FeeProfile `yaml:"platforms" validate:"required,min=1,dive,keys,oneof=airbnb booking vrbo website dtravel,endkeys"`
	Seasonality models.Seasonality                       `yaml:"seasonality"`
	Occupancy   models.Occupancy                         `yaml:"occupancy"`
	NetGoal     models.NetGoal                           `yaml:"net_goal"`
	Split       models.BookingSplit                      `yaml:"split"`
	Holidays    models.HolidaySettings                   `yaml:"holidays"`

	// HolidayPreferences adjusts single merged holidays, keyed by YYYY-MM-DD
	HolidayPreferences map[string]models.HolidayPreference `yaml:"holiday_preferences"`

	Overrides []OverrideEntry `yaml:"overrides" validate:"dive"`
}

// OverrideEntry pins one price cell. Gross is kept as typed so it goes
// through the same parsing as interactive input.
type OverrideEntry struct {
	Platform models.PlatformKey `yaml:"platform" validate:"oneof=airbnb booking vrbo website dtravel"`
	Season   string             `yaml:"season" validate:"required"`
	DayType  models.DayType     `yaml:"day_type" validate:"oneof=weekday weekend holiday"`
	Gross    string             `yaml:"gross"`
	Locked   *bool              `yaml:"locked"`
}

// Key returns the cell the entry addresses
func (o OverrideEntry) Key() models.OverrideKey {
	return models.OverrideKey{Platform: o.Platform, Season: o.Season, DayType: o.DayType}
}

// DefaultScenario is the out-of-the-box setup for the current year
func DefaultScenario() *Scenario {
	return &Scenario{
		Currency: "EUR",
		Year:     time.Now().Year(),
		Platforms: map[models.PlatformKey]models.FeeProfile{
			models.Airbnb:  {GuestFeePct: 14, HostCommissionPct: 3, VATPct: 6, IncomeTaxPct: 15, DiscountPaddingPct: 20},
			models.Booking: {GuestFeePct: 0, HostCommissionPct: 16.4, VATPct: 6, IncomeTaxPct: 15, DiscountPaddingPct: 20},
			models.VRBO:    {GuestFeePct: 12, HostCommissionPct: 8, VATPct: 6, IncomeTaxPct: 15, DiscountPaddingPct: 20},
			models.Website: {GuestFeePct: 10, HostCommissionPct: 3, VATPct: 6, IncomeTaxPct: 15, DiscountPaddingPct: 20},
			models.DTravel: {GuestFeePct: 0, HostCommissionPct: 5.9, VATPct: 6, IncomeTaxPct: 15, DiscountPaddingPct: 20},
		},
		Seasonality: models.Seasonality{
			Types: []string{"Deep Low", "Low", "Early or Late", "Season", "Peak"},
			Months: map[string][]models.Month{
				"Deep Low":      {models.Jan, models.Feb},
				"Low":           {models.Mar, models.Apr, models.Dec},
				"Early or Late": {models.May, models.Jun, models.Nov},
				"Season":        {models.Jul, models.Sep, models.Oct},
				"Peak":          {models.Aug},
			},
			Multipliers: models.Multipliers{Weekday: 1.0, Weekend: 1.2, Holiday: 1.4},
		},
		Occupancy: models.Occupancy{
			Mode:       models.OccupancyPerSeason,
			PerYearPct: 60,
			PerSeasonPct: map[string]float64{
				"Deep Low": 40, "Low": 55, "Early or Late": 60, "Season": 70, "Peak": 85,
			},
		},
		NetGoal: models.NetGoal{Mode: models.GoalPerYear, PerYear: 40000, PerMonth: 3500},
		Split:   models.BookingSplit{Weekday: 0.7, Weekend: 0.25, Holiday: 0.05},
		Holidays: models.HolidaySettings{
			Multiplier:      models.DefaultHolidayMultiplier,
			ApplyToObserved: true,
			MaxBufferDays:   2,
			ActiveCountries: []string{"US", "UK", "DE", "NL", "SE"},
		},
	}
}

// LoadScenario reads a YAML scenario over the defaults and validates it.
// An empty path returns the defaults. Map blocks in the file, such as
// platforms or season months, replace the defaults instead of extending them.
func LoadScenario(path string) (*Scenario, error) {
	sc := DefaultScenario()
	if path == "" {
		return sc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	if err := sc.overlay(data); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// overlay decodes data over s. Maps named in the file replace the defaults
// instead of being merged into them.
func (s *Scenario) overlay(data []byte) error {
	var present map[string]interface{}
	if err := yaml.Unmarshal(data, &present); err != nil {
		return err
	}
	if hasKey(present, "platforms") {
		s.Platforms = nil
	}
	if hasKey(present, "seasonality", "months") {
		s.Seasonality.Months = nil
	}
	if hasKey(present, "occupancy", "per_season_pct") {
		s.Occupancy.PerSeasonPct = nil
	}
	if hasKey(present, "occupancy", "per_month_pct") {
		s.Occupancy.PerMonthPct = nil
	}
	if hasKey(present, "net_goal", "per_season") {
		s.NetGoal.PerSeason = nil
	}
	return yaml.Unmarshal(data, s)
}

// hasKey reports whether the nested key path exists in a decoded YAML document
func hasKey(doc map[string]interface{}, path ...string) bool {
	v, ok := doc[path[0]]
	for _, key := range path[1:] {
		if !ok {
			return false
		}
		m, isMap := v.(map[interface{}]interface{})
		if !isMap {
			return false
		}
		v, ok = m[key]
	}
	return ok
}

var validate = validator.New()

// Validate checks the scenario structure and reports every failing field at once
func (s *Scenario) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid scenario: %s", strings.Join(msgs, "; "))
}

// Inputs converts the scenario into engine inputs with the given merged calendar
func (s *Scenario) Inputs(calendar []models.MergedHoliday) models.Inputs {
	holidays := s.Holidays
	in := models.Inputs{
		Currency:    strings.ToUpper(s.Currency),
		Year:        s.Year,
		Platforms:   s.Platforms,
		Seasonality: s.Seasonality,
		Occupancy:   s.Occupancy,
		NetGoal:     s.NetGoal,
		Split:       s.Split,
		Holidays:    &holidays,
		Calendar:    calendar,
	}
	return in.Clone()
}
