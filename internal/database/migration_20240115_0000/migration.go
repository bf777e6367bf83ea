package migration_20240115_0000

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	. "github.com/useeio-io/useeio-store/internal/database/migrations"
	"gorm.io/gorm"
)

// ModelMetadata has one row per USEEIO model release. The loader upserts
// on model_version; consumers read the row with is_active = true.
type ModelMetadata struct {
	ModelVersion     string    `gorm:"primary_key"`
	EconomicYear     *int      `gorm:""`
	SatelliteYearMin *int      `gorm:""`
	SatelliteYearMax *int      `gorm:""`
	IsActive         bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ModelMetadata) TableName() string {
	return "model_metadata"
}

// IpccArGwp holds the IPCC global-warming-potential reference factors,
// keyed by gas and assessment-report version (AR4/AR5/AR6). GwpValue is
// null when the source reports a bound rather than a number; GwpDisplay
// then carries the display string (e.g. "<1").
type IpccArGwp struct {
	GasName    string   `gorm:"primary_key"`
	ArVersion  string   `gorm:"primary_key"`
	GwpValue   *float64 `gorm:""`
	GwpDisplay *string  `gorm:""`
	Category   *string  `gorm:""`
}

func (IpccArGwp) TableName() string {
	return "ipcc_ar_gwp"
}

// CharacterizationFactor is one cell of the characterization matrix C:
// the factor for an indicator/flow pair under one model version. The
// table keeps the workbook's sheet name so existing consumers can keep
// joining on "c".
type CharacterizationFactor struct {
	ModelVersion  string  `gorm:"primary_key"`
	IndicatorCode string  `gorm:"primary_key"`
	Flow          string  `gorm:"primary_key"`
	Value         float64 `gorm:"not null"`
}

func (CharacterizationFactor) TableName() string {
	return "c"
}

var comments = []string{
	`COMMENT ON TABLE model_metadata IS 'One row per USEEIO model release; is_active marks the version consumers should use'`,
	`COMMENT ON COLUMN model_metadata.model_version IS 'USEEIO model release identifier'`,
	`COMMENT ON COLUMN model_metadata.economic_year IS 'Source economic-accounts year (from the demands sheet)'`,
	`COMMENT ON COLUMN model_metadata.satellite_year_min IS 'First year covered by satellite data (Rho columns)'`,
	`COMMENT ON COLUMN model_metadata.satellite_year_max IS 'Last year covered by satellite data (Rho columns)'`,
	`COMMENT ON COLUMN model_metadata.is_active IS 'True for the model version the consuming application should read'`,
	`COMMENT ON COLUMN model_metadata.updated_at IS 'Maintained by the model_metadata_set_updated_at trigger'`,
	`COMMENT ON TABLE ipcc_ar_gwp IS 'IPCC AR global-warming-potential reference factors by gas and AR version'`,
	`COMMENT ON COLUMN ipcc_ar_gwp.gwp_value IS 'CO2-equivalent factor; null when the source reports a bound instead of a value'`,
	`COMMENT ON COLUMN ipcc_ar_gwp.gwp_display IS 'Display fallback when gwp_value is null, e.g. <1'`,
	`COMMENT ON COLUMN ipcc_ar_gwp.category IS 'Gas classification, e.g. Major GHG'`,
	`COMMENT ON TABLE c IS 'Characterization matrix: factor per (model_version, indicator_code, flow), e.g. GWP per flow'`,
}

func Migrate() *gormigrate.Migration {
	migrationId := "20240115-0000"
	return CreateMigrationFromActions(migrationId,
		CreateTableAction(&ModelMetadata{}),
		CreateTableAction(&IpccArGwp{}),
		CreateTableAction(&CharacterizationFactor{}),

		// updated_at maintenance on model_metadata. The trigger always
		// wins over caller supplied values; inserts rely on the column
		// default instead. Drop before create so a re-run converges on
		// one active trigger.
		ExecActionIf(`
			CREATE OR REPLACE FUNCTION model_metadata_set_updated_at() RETURNS TRIGGER LANGUAGE plpgsql AS '
			BEGIN
			NEW.updated_at := now();
			RETURN NEW;
			END;'
		`, `
			DROP FUNCTION IF EXISTS model_metadata_set_updated_at
		`, NotOnSqlLite),
		ExecActionIf(`
			DROP TRIGGER IF EXISTS model_metadata_set_updated_at ON model_metadata
		`, ``, NotOnSqlLite),
		ExecActionIf(`
			CREATE TRIGGER model_metadata_set_updated_at BEFORE UPDATE ON model_metadata
			FOR EACH ROW EXECUTE PROCEDURE model_metadata_set_updated_at()
		`, `
			DROP TRIGGER IF EXISTS model_metadata_set_updated_at ON model_metadata
		`, NotOnSqlLite),

		// Sqlite has no BEFORE UPDATE NEW.x assignment; an AFTER UPDATE
		// rewrite gives the same observable behavior (recursive
		// triggers are off by default).
		ExecActionIf(`
			CREATE TRIGGER IF NOT EXISTS model_metadata_set_updated_at
			AFTER UPDATE ON model_metadata
			FOR EACH ROW
			BEGIN
			UPDATE model_metadata SET updated_at = CURRENT_TIMESTAMP WHERE model_version = NEW.model_version;
			END
		`, `
			DROP TRIGGER IF EXISTS model_metadata_set_updated_at
		`, OnlyOnSqlLite),

		FuncAction(
			func(tx *gorm.DB) error {
				if !NotOnSqlLite(tx) {
					return nil
				}
				for _, stmt := range comments {
					if err := tx.Exec(stmt).Error; err != nil {
						return err
					}
				}
				return nil
			},
			func(tx *gorm.DB) error {
				// comments go away with the tables
				return nil
			},
		),
	)
}
