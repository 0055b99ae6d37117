package models

// SeasonTotals accumulates nights and per-night figures times nights
type SeasonTotals struct {
	Nights int     `json:"nights"`
	Gross  float64 `json:"gross"`
	Guest  float64 `json:"guest"`
	Net    float64 `json:"net"`
}

// Totals holds per-season and full-year sums for one platform
type Totals struct {
	Platform PlatformKey             `json:"platform"`
	BySeason map[string]SeasonTotals `json:"by_season"`
	Grand    SeasonTotals            `json:"grand"`
}

// ExportRecord is one flat export line
type ExportRecord struct {
	Platform   PlatformKey
	Season     string
	DayType    DayType
	DP         float64
	Gross      float64
	GuestPrice float64
	Net        float64
	Nights     int
	GrossTotal float64
	GuestTotal float64
	NetTotal   float64
}

// InsightReport holds the summary printed after a recompute
type InsightReport struct {
	Platform        PlatformKey
	Currency        string
	Year            int
	Fingerprint     string
	Goal            float64
	Totals          Totals
	Seasons         []string
	Rows            []PriceRow
	Nights          map[string]DayNights
	CalendarMix     map[string]DayNights
	SuggestedSplit  *BookingSplit
	Drift           float64 // achieved net minus goal
	BestSeason      string
	AvgNetPerNight  float64
	LockedOverrides int
	Preview         []PreviewLine
}

// PreviewLine is the fee-stack preview for one day type at a fixed base price
type PreviewLine struct {
	DayType    DayType
	DP         float64
	Gross      float64
	GuestPrice float64
	Net        float64
}
