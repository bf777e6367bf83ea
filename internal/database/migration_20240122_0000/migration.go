package migration_20240122_0000

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/google/uuid"
	. "github.com/useeio-io/useeio-store/internal/database/migrations"
)

// Per-model satellite tables the loader fills from the workbook sheets
// (indicators, SectorCrosswalk, commodities_meta, Rho, M and M_d).

type Indicator struct {
	ModelVersion string  `gorm:"primary_key"`
	Code         string  `gorm:"primary_key"`
	NumericID    *int64  `gorm:"column:id"`
	Name         *string `gorm:""`
	Unit         *string `gorm:""`
	Group        *string `gorm:"column:group"`
	SimpleUnit   *string `gorm:""`
	SimpleName   *string `gorm:""`
}

func (Indicator) TableName() string {
	return "indicators"
}

type SectorCrosswalk struct {
	ID                   uint    `gorm:"primary_key"`
	ModelVersion         string  `gorm:"not null"`
	Naics                string  `gorm:"not null"`
	BeaSector            *string `gorm:""`
	BeaSummary           *string `gorm:""`
	BeaDetail            *string `gorm:""`
	BeaDetailWasteDisagg *string `gorm:""`
}

func (SectorCrosswalk) TableName() string {
	return "sector_crosswalk"
}

type CommodityMeta struct {
	ModelVersion string  `gorm:"primary_key"`
	Code         string  `gorm:"primary_key"`
	Name         *string `gorm:""`
	Description  *string `gorm:""`
	Category     *string `gorm:""`
	Location     *string `gorm:""`
	Unit         *string `gorm:""`
}

func (CommodityMeta) TableName() string {
	return "commodities_meta"
}

type Rho struct {
	ModelVersion string  `gorm:"primary_key"`
	SectorCode   string  `gorm:"primary_key"`
	Region       string  `gorm:"primary_key"`
	Year         int     `gorm:"primary_key"`
	RhoValue     float64 `gorm:"not null"`
}

func (Rho) TableName() string {
	return "rho"
}

// Impact holds the melted M (total) and M_d (domestic) matrices.
type Impact struct {
	ModelVersion  string  `gorm:"primary_key"`
	ImpactType    string  `gorm:"primary_key"`
	IndicatorCode string  `gorm:"primary_key"`
	SectorCode    string  `gorm:"primary_key"`
	Region        string  `gorm:"primary_key"`
	Value         float64 `gorm:"not null"`
}

func (Impact) TableName() string {
	return "impacts"
}

// LoadRun is the audit row a loader opens before replacing a model
// version's data and closes when it finishes.
type LoadRun struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	ModelVersion string     `gorm:"not null"`
	Status       string     `gorm:"not null;default:running"`
	Error        *string    `gorm:""`
	StartedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	CompletedAt  *time.Time `gorm:""`
}

func (LoadRun) TableName() string {
	return "load_runs"
}

func Migrate() *gormigrate.Migration {
	migrationId := "20240122-0000"
	return CreateMigrationFromActions(migrationId,
		CreateTableAction(&Indicator{}),
		CreateTableAction(&SectorCrosswalk{}),
		CreateTableAction(&CommodityMeta{}),
		CreateTableAction(&Rho{}),
		CreateTableAction(&Impact{}),
		CreateTableAction(&LoadRun{}),
		// create lookup indexes manually so migrations stay portable
		// across postgres, cockroach and sqlite
		ExecAction(
			`CREATE INDEX IF NOT EXISTS idx_sector_crosswalk_model_naics ON sector_crosswalk (model_version, naics)`,
			`DROP INDEX IF EXISTS idx_sector_crosswalk_model_naics`,
		),
		ExecAction(
			`CREATE INDEX IF NOT EXISTS idx_impacts_model_sector ON impacts (model_version, sector_code)`,
			`DROP INDEX IF EXISTS idx_impacts_model_sector`,
		),
		ExecAction(
			`CREATE INDEX IF NOT EXISTS idx_load_runs_model_version ON load_runs (model_version)`,
			`DROP INDEX IF EXISTS idx_load_runs_model_version`,
		),
	)
}
