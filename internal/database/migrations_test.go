package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMigrationsAreIdempotent(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	db, err := NewTestDatabase(logger)
	require.NoError(t, err)

	// NewTestDatabase already ran the chain once; a second pass must be
	// a no-op.
	m := NewMigrations()
	ctx := context.Background()
	require.NoError(t, m.Migrate(ctx, db))

	count, err := m.CountMigrationsApplied(db)
	require.NoError(t, err)
	require.Equal(t, len(m.Migrations), count)

	for _, table := range []string{
		"model_metadata", "ipcc_ar_gwp", "c",
		"indicators", "sector_crosswalk", "commodities_meta", "rho", "impacts",
		"load_runs",
	} {
		require.True(t, db.Migrator().HasTable(table), table)
	}

	// The seed migration left reference rows behind.
	var seeded int64
	require.NoError(t, db.Table("ipcc_ar_gwp").Count(&seeded).Error)
	require.NotZero(t, seeded)
}

func TestRollbackAll(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	db, err := NewTestDatabase(logger)
	require.NoError(t, err)

	m := NewMigrations()
	ctx := context.Background()
	require.NoError(t, m.RollbackAll(ctx, db))

	for _, table := range []string{"model_metadata", "ipcc_ar_gwp", "c", "useeio_migrations"} {
		require.False(t, db.Migrator().HasTable(table), table)
	}

	// The chain reapplies cleanly after a full rollback.
	require.NoError(t, m.Migrate(ctx, db))
	count, err := m.CountMigrationsApplied(db)
	require.NoError(t, err)
	require.Equal(t, len(m.Migrations), count)
}

func TestRollbackLast(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	db, err := NewTestDatabase(logger)
	require.NoError(t, err)

	m := NewMigrations()
	ctx := context.Background()
	require.NoError(t, m.RollbackLast(ctx, db))

	// Rolling back the seed migration empties the reference table but
	// keeps the schema.
	require.True(t, db.Migrator().HasTable("ipcc_ar_gwp"))
	var seeded int64
	require.NoError(t, db.Table("ipcc_ar_gwp").Count(&seeded).Error)
	require.Zero(t, seeded)

	require.NoError(t, m.Migrate(ctx, db))
	require.NoError(t, db.Table("ipcc_ar_gwp").Count(&seeded).Error)
	require.NotZero(t, seeded)
}
