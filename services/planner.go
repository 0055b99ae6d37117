package services

import (
	"fmt"
	"sync"

	"airbnb-pricing/models"
	"airbnb-pricing/pricing"
	"airbnb-pricing/utils"
)

// View is one consistent recompute result: the derived state for an input
// snapshot plus the rows with that snapshot's overrides applied
type View struct {
	Inputs    models.Inputs
	State     *models.DerivedState
	Rows      []models.PriceRow
	Overrides models.Overrides
}

// Table returns the rows of one platform in table order
func (v *View) Table(platform models.PlatformKey) []models.PriceRow {
	var out []models.PriceRow
	for _, r := range v.Rows {
		if r.Platform == platform {
			out = append(out, r)
		}
	}
	return out
}

// Totals aggregates one platform's rows over the booked nights
func (v *View) Totals(platform models.PlatformKey) models.Totals {
	return pricing.Aggregate(v.Rows, platform, v.Inputs.Seasonality, v.State.Nights)
}

// Records flattens one platform's rows for export
func (v *View) Records(platform models.PlatformKey) []models.ExportRecord {
	return pricing.ExportRecords(v.Rows, platform, v.Inputs.Seasonality, v.State.Nights)
}

// Planner holds the editable inputs and the override store. Edits swap in
// whole copies, so readers always see a consistent snapshot.
type Planner struct {
	mu        sync.RWMutex
	inputs    models.Inputs
	overrides models.Overrides

	memoMu  sync.Mutex
	memoKey string
	memo    *models.DerivedState

	logger *utils.Logger
}

// NewPlanner creates a Planner seeded with in
func NewPlanner(in models.Inputs, logger *utils.Logger) *Planner {
	return &Planner{
		inputs:    in.Clone(),
		overrides: make(models.Overrides),
		logger:    logger,
	}
}

// Update applies edit to a copy of the current inputs and swaps it in
func (p *Planner) Update(edit func(*models.Inputs)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := p.inputs.Clone()
	edit(&next)
	p.inputs = next
}

// Snapshot returns copies of the current inputs and overrides
func (p *Planner) Snapshot() (models.Inputs, models.Overrides) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.inputs.Clone(), p.overrides.Clone()
}

// Recompute derives the table for the current snapshot. The derived state is
// memoized by input fingerprint; overrides are applied on every call.
func (p *Planner) Recompute() (*View, error) {
	in, overrides := p.Snapshot()

	key, err := utils.Fingerprint(in)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint inputs: %w", err)
	}

	p.memoMu.Lock()
	state := p.memo
	if state == nil || p.memoKey != key {
		state = pricing.Recompute(in)
		state.Fingerprint = key
		p.memo, p.memoKey = state, key
		p.logger.Debug("Recomputed price table %s (%d rows)", key, len(state.Rows))
	}
	p.memoMu.Unlock()

	return &View{
		Inputs:    in,
		State:     state,
		Rows:      pricing.ApplyOverrides(state.Rows, overrides, in.Platforms),
		Overrides: overrides,
	}, nil
}

// SetOverrideGross pins a gross rate typed by the user. Input that is not a
// positive number is ignored. A new override starts locked; an existing one
// keeps its lock state. Reports whether the value was accepted.
func (p *Planner) SetOverrideGross(key models.OverrideKey, raw string) bool {
	gross, ok := ParseGross(raw)
	if !ok {
		p.logger.Debug("Ignoring override %v: %q is not a positive number", key, raw)
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	next := p.overrides.Clone()
	ov, exists := next[key]
	if !exists {
		ov.Locked = true
	}
	ov.Gross = gross
	next[key] = ov
	p.overrides = next
	return true
}

// SetOverrideLock locks or unlocks a cell. An absent override is created from
// the cell's current gross. Reports false when the cell does not exist.
func (p *Planner) SetOverrideLock(key models.OverrideKey, locked bool) (bool, error) {
	view, err := p.Recompute()
	if err != nil {
		return false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	next := p.overrides.Clone()
	ov, exists := next[key]
	if !exists {
		row, found := pricing.FindRow(view.Rows, key.Platform, key.Season, key.DayType)
		if !found {
			return false, nil
		}
		ov.Gross = row.Gross
	}
	ov.Locked = locked
	next[key] = ov
	p.overrides = next
	return true, nil
}

// ClearOverride removes any override for the cell
func (p *Planner) ClearOverride(key models.OverrideKey) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.overrides[key]; !ok {
		return
	}
	next := p.overrides.Clone()
	delete(next, key)
	p.overrides = next
}
