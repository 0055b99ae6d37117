package models

// PlatformKey identifies a booking channel
type PlatformKey string

const (
	Airbnb  PlatformKey = "airbnb"
	Booking PlatformKey = "booking"
	VRBO    PlatformKey = "vrbo"
	Website PlatformKey = "website"
	DTravel PlatformKey = "dtravel"
)

// AllPlatforms is the fixed platform order used for tables and exports
var AllPlatforms = []PlatformKey{Airbnb, Booking, VRBO, Website, DTravel}

// Label returns the human-readable platform name used in exports
func (p PlatformKey) Label() string {
	switch p {
	case Airbnb:
		return "Airbnb"
	case Booking:
		return "Booking.com"
	case VRBO:
		return "VRBO"
	case Website:
		return "My Website"
	case DTravel:
		return "DTravel"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the known platforms
func (p PlatformKey) Valid() bool {
	for _, k := range AllPlatforms {
		if p == k {
			return true
		}
	}
	return false
}

// FeeProfile is a platform's fee and tax stack, each value a percentage in [0,100]
type FeeProfile struct {
	GuestFeePct        float64 `yaml:"guest_fee_pct" json:"guest_fee_pct"`
	HostCommissionPct  float64 `yaml:"host_commission_pct" json:"host_commission_pct"`
	VATPct             float64 `yaml:"vat_pct" json:"vat_pct"`
	IncomeTaxPct       float64 `yaml:"income_tax_pct" json:"income_tax_pct"`
	DiscountPaddingPct float64 `yaml:"discount_padding_pct" json:"discount_padding_pct"`
}

// FeeField names one editable field of a FeeProfile
type FeeField int

const (
	GuestFee FeeField = iota
	HostCommission
	VAT
	IncomeTax
	DiscountPadding
)

// FeeFields lists every editable fee field in display order
var FeeFields = []FeeField{GuestFee, HostCommission, VAT, IncomeTax, DiscountPadding}

type feeFieldSpec struct {
	label string
	key   string
	get   func(FeeProfile) float64
	set   func(*FeeProfile, float64)
}

var feeFieldTable = map[FeeField]feeFieldSpec{
	GuestFee: {
		label: "Guest Service Fee %",
		key:   "guest_fee_pct",
		get:   func(p FeeProfile) float64 { return p.GuestFeePct },
		set:   func(p *FeeProfile, v float64) { p.GuestFeePct = v },
	},
	HostCommission: {
		label: "Host Commission %",
		key:   "host_commission_pct",
		get:   func(p FeeProfile) float64 { return p.HostCommissionPct },
		set:   func(p *FeeProfile, v float64) { p.HostCommissionPct = v },
	},
	VAT: {
		label: "VAT %",
		key:   "vat_pct",
		get:   func(p FeeProfile) float64 { return p.VATPct },
		set:   func(p *FeeProfile, v float64) { p.VATPct = v },
	},
	IncomeTax: {
		label: "Income Tax %",
		key:   "income_tax_pct",
		get:   func(p FeeProfile) float64 { return p.IncomeTaxPct },
		set:   func(p *FeeProfile, v float64) { p.IncomeTaxPct = v },
	},
	DiscountPadding: {
		label: "Padding for Discounts %",
		key:   "discount_padding_pct",
		get:   func(p FeeProfile) float64 { return p.DiscountPaddingPct },
		set:   func(p *FeeProfile, v float64) { p.DiscountPaddingPct = v },
	},
}

// Label returns the form label for the field
func (f FeeField) Label() string {
	if spec, ok := feeFieldTable[f]; ok {
		return spec.label
	}
	return "unknown"
}

// Key returns the snake_case identifier used in scenario files
func (f FeeField) Key() string {
	if spec, ok := feeFieldTable[f]; ok {
		return spec.key
	}
	return ""
}

// ParseFeeField resolves a scenario-file key to a FeeField
func ParseFeeField(key string) (FeeField, bool) {
	for _, f := range FeeFields {
		if feeFieldTable[f].key == key {
			return f, true
		}
	}
	return 0, false
}

// Get reads a single field
func (p FeeProfile) Get(f FeeField) float64 {
	if spec, ok := feeFieldTable[f]; ok {
		return spec.get(p)
	}
	return 0
}

// With returns a copy of the profile with one field replaced
func (p FeeProfile) With(f FeeField, v float64) FeeProfile {
	if spec, ok := feeFieldTable[f]; ok {
		spec.set(&p, v)
	}
	return p
}
