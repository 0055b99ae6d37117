package models

// HolidayEntry is a raw holiday record from a holiday source
type HolidayEntry struct {
	ID                string `yaml:"id" json:"id"`
	Name              string `yaml:"name" json:"name"`
	Date              string `yaml:"date" json:"date"` // YYYY-MM-DD
	Country           string `yaml:"country" json:"country"`
	IsObserved        bool   `yaml:"is_observed" json:"is_observed"`
	SuggestBufferDays int    `yaml:"suggest_buffer_days" json:"suggest_buffer_days"`
}

// MergedHoliday is one date of the deduplicated holiday calendar
type MergedHoliday struct {
	Date      string   `yaml:"date" json:"date"`
	Name      string   `yaml:"name" json:"name"`
	Countries []string `yaml:"countries" json:"countries"`
	Enabled   bool     `yaml:"enabled" json:"enabled"`
	Buffer    int      `yaml:"buffer" json:"buffer"`
}

// HolidayPreference is a per-date user adjustment applied during merge
type HolidayPreference struct {
	Buffer  *int  `yaml:"buffer" json:"buffer,omitempty"`
	Enabled *bool `yaml:"enabled" json:"enabled,omitempty"`
}
