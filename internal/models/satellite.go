package models

// Per-model tables melted out of the workbook sheets by the loader.

type Indicator struct {
	ModelVersion string  `gorm:"primary_key" json:"model_version"`
	Code         string  `gorm:"primary_key" json:"code"`
	NumericID    *int64  `gorm:"column:id" json:"id,omitempty"`
	Name         *string `json:"name,omitempty"`
	Unit         *string `json:"unit,omitempty"`
	Group        *string `gorm:"column:group" json:"group,omitempty"`
	SimpleUnit   *string `json:"simple_unit,omitempty"`
	SimpleName   *string `json:"simple_name,omitempty"`
}

func (Indicator) TableName() string {
	return "indicators"
}

type SectorCrosswalk struct {
	ID                   uint    `gorm:"primary_key" json:"-"`
	ModelVersion         string  `gorm:"not null" json:"model_version"`
	Naics                string  `gorm:"not null" json:"naics"`
	BeaSector            *string `json:"bea_sector,omitempty"`
	BeaSummary           *string `json:"bea_summary,omitempty"`
	BeaDetail            *string `json:"bea_detail,omitempty"`
	BeaDetailWasteDisagg *string `json:"bea_detail_waste_disagg,omitempty"`
}

func (SectorCrosswalk) TableName() string {
	return "sector_crosswalk"
}

type CommodityMeta struct {
	ModelVersion string  `gorm:"primary_key" json:"model_version"`
	Code         string  `gorm:"primary_key" json:"code"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	Location     *string `json:"location,omitempty"`
	Unit         *string `json:"unit,omitempty"`
}

func (CommodityMeta) TableName() string {
	return "commodities_meta"
}

// Rho is the price-deflator satellite series: one value per sector,
// region and year.
type Rho struct {
	ModelVersion string  `gorm:"primary_key" json:"model_version"`
	SectorCode   string  `gorm:"primary_key" json:"sector_code"`
	Region       string  `gorm:"primary_key" json:"region"`
	Year         int     `gorm:"primary_key" json:"year"`
	RhoValue     float64 `gorm:"not null" json:"rho_value"`
}

func (Rho) TableName() string {
	return "rho"
}

// Impact is one cell of the melted M (ImpactType "total") or M_d
// (ImpactType "domestic") matrix.
type Impact struct {
	ModelVersion  string  `gorm:"primary_key" json:"model_version"`
	ImpactType    string  `gorm:"primary_key" json:"impact_type"`
	IndicatorCode string  `gorm:"primary_key" json:"indicator_code"`
	SectorCode    string  `gorm:"primary_key" json:"sector_code"`
	Region        string  `gorm:"primary_key" json:"region"`
	Value         float64 `gorm:"not null" json:"value"`
}

func (Impact) TableName() string {
	return "impacts"
}

const (
	ImpactTypeTotal    = "total"
	ImpactTypeDomestic = "domestic"
)
