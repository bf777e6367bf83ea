package migration_20240205_0000

import (
	"github.com/go-gormigrate/gormigrate/v2"
	. "github.com/useeio-io/useeio-store/internal/database/migrations"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

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

// Migrate seeds the IPCC AR GWP reference rows. Upsert semantics keep
// the step convergent if the loader refreshed rows in the meantime.
func Migrate() *gormigrate.Migration {
	migrationId := "20240205-0000"
	return CreateMigrationFromActions(migrationId,
		FuncAction(
			func(tx *gorm.DB) error {
				return tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "gas_name"}, {Name: "ar_version"}},
					UpdateAll: true,
				}).CreateInBatches(seedRows(), 200).Error
			},
			func(tx *gorm.DB) error {
				for _, row := range seedRows() {
					if err := tx.Where("gas_name = ? AND ar_version = ?", row.GasName, row.ArVersion).
						Delete(&IpccArGwp{}).Error; err != nil {
						return err
					}
				}
				return nil
			},
		),
	)
}
