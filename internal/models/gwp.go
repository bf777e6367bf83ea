package models

import "strconv"

// GwpFactor is one IPCC global-warming-potential reference row, keyed
// by gas name and assessment-report version ("AR4"/"AR5"/"AR6" by
// convention).
type GwpFactor struct {
	GasName    string   `gorm:"primary_key" json:"gas_name"`
	ArVersion  string   `gorm:"primary_key" json:"ar_version"`
	GwpValue   *float64 `json:"gwp_value,omitempty"`
	GwpDisplay *string  `json:"gwp_display,omitempty"`
	Category   *string  `json:"category,omitempty"`
}

func (GwpFactor) TableName() string {
	return "ipcc_ar_gwp"
}

// DisplayValue formats the factor for display, falling back to the
// display string when the source reports a bound (e.g. "<1") instead of
// a number.
func (g *GwpFactor) DisplayValue() string {
	if g.GwpValue != nil {
		return strconv.FormatFloat(*g.GwpValue, 'f', -1, 64)
	}
	if g.GwpDisplay != nil {
		return *g.GwpDisplay
	}
	return ""
}
