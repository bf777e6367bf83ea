package database

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/useeio-io/useeio-store/internal/database/migration_20240115_0000"
	"github.com/useeio-io/useeio-store/internal/database/migration_20240122_0000"
	"github.com/useeio-io/useeio-store/internal/database/migration_20240205_0000"
	"github.com/useeio-io/useeio-store/internal/database/migrations"
)

// Migrations rules:
//
//  1. IDs are numerical timestamps that must sort ascending.
//     Use YYYYMMDD-HHMM w/ 24 hour time for format
//     Example: August 21 2018 at 2:54pm would be 20180821-1454.
//
//  2. Include models inline with migrations to see the evolution of the object over time.
//     Using our internal type models directly in the first migration would fail in future clean
//     installations.
//
//  3. Migrations must be backwards compatible. There are no new required fields allowed.
//
//  4. Create one function in a separate package that returns your Migration.
func NewMigrations() *migrations.Migrations {
	return &migrations.Migrations{
		GormOptions: &gormigrate.Options{
			TableName:      "useeio_migrations",
			IDColumnName:   "id",
			IDColumnSize:   40,
			UseTransaction: false,
		},
		Migrations: []*gormigrate.Migration{
			migration_20240115_0000.Migrate(),
			migration_20240122_0000.Migrate(),
			migration_20240205_0000.Migrate(),
		},
	}
}
