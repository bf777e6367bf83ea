package models

import "time"

// ModelMetadata describes one USEEIO model release. The loader upserts
// a row per model_version; the consuming application reads the row with
// IsActive set to drive its methodology description. The schema does
// not force a single active row; Store.SetActiveModel maintains that
// invariant.
type ModelMetadata struct {
	ModelVersion     string    `gorm:"primary_key" json:"model_version"`
	EconomicYear     *int      `json:"economic_year,omitempty"`
	SatelliteYearMin *int      `json:"satellite_year_min,omitempty"`
	SatelliteYearMax *int      `json:"satellite_year_max,omitempty"`
	IsActive         bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ModelMetadata) TableName() string {
	return "model_metadata"
}
