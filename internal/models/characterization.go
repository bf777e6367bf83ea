package models

// CharacterizationFactor is one cell of the characterization matrix C:
// the multiplier converting a flow quantity into an indicator value
// under one model version. The table name stays "c" to match the
// workbook sheet existing consumers join on. model_version is not a
// foreign key; referential integrity is the loader's contract.
type CharacterizationFactor struct {
	ModelVersion  string  `gorm:"primary_key" json:"model_version"`
	IndicatorCode string  `gorm:"primary_key" json:"indicator_code"`
	Flow          string  `gorm:"primary_key" json:"flow"`
	Value         float64 `gorm:"not null" json:"value"`
}

func (CharacterizationFactor) TableName() string {
	return "c"
}
