package database

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// NewTestDatabase opens a fresh in-memory sqlite database and runs the
// full migration chain against it. Each call gets its own database so
// test suites stay isolated.
func NewTestDatabase(logger *zap.SugaredLogger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:useeio-test-%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         NewLogger(logger),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := NewMigrations().Migrate(context.Background(), db); err != nil {
		return nil, err
	}
	return db, nil
}
