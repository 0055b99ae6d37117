// Package holidays builds the merged holiday calendar used to classify
// nights as holidays and to suggest a booking split.
package holidays

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"airbnb-pricing/models"

	"gopkg.in/yaml.v2"
)

// Source provides raw holiday records for a year and a set of countries
type Source interface {
	Fetch(ctx context.Context, year int, countries []string) ([]models.HolidayEntry, error)
}

// SeedSource serves the small built-in holiday list
type SeedSource struct{}

type seed struct {
	name    string
	monthDy string
	country string
	buffer  int
}

var seeds = []seed{
	{"New Year's Day", "01-01", "US", 0},
	{"New Year's Day", "01-01", "UK", 0},
	{"Christmas Day", "12-25", "US", 1},
	{"Christmas Day", "12-25", "UK", 1},
	{"Boxing Day", "12-26", "UK", 0},
}

// Fetch returns the seeds for year, limited to countries when any are given
func (SeedSource) Fetch(ctx context.Context, year int, countries []string) ([]models.HolidayEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.HolidayEntry
	for _, s := range seeds {
		if !countryWanted(s.country, countries) {
			continue
		}
		date := fmt.Sprintf("%04d-%s", year, s.monthDy)
		out = append(out, models.HolidayEntry{
			ID:                strings.ToLower(s.country) + "-" + date,
			Name:              s.name,
			Date:              date,
			Country:           s.country,
			SuggestBufferDays: s.buffer,
		})
	}
	return out, nil
}

// FileSource reads holiday records from a YAML list
type FileSource struct {
	Path string
}

// Fetch loads the file and keeps records dated in year for the given countries
func (f FileSource) Fetch(ctx context.Context, year int, countries []string) ([]models.HolidayEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday file: %w", err)
	}
	var entries []models.HolidayEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse holiday file %s: %w", f.Path, err)
	}

	prefix := strconv.Itoa(year) + "-"
	var out []models.HolidayEntry
	for _, e := range entries {
		if !strings.HasPrefix(e.Date, prefix) || !countryWanted(e.Country, countries) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func countryWanted(country string, countries []string) bool {
	if len(countries) == 0 {
		return true
	}
	for _, c := range countries {
		if strings.EqualFold(c, country) {
			return true
		}
	}
	return false
}
