// Package store is the typed access layer over the USEEIO schema. It
// carries both sides of the schema's contract: the upsert surface the
// external loader drives and the lookups the consuming application
// makes. All multi-statement writes go through a dialect-aware
// transaction function.
package store

import (
	"github.com/pkg/errors"
	"github.com/useeio-io/useeio-store/internal/database"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var tracer trace.Tracer

func init() {
	tracer = otel.Tracer("github.com/useeio-io/useeio-store/internal/store")
}

// insertBatchSize matches the chunk size the loader uses for the melted
// matrix tables.
const insertBatchSize = 2000

var ErrModelNotFound = errors.New("model version not found")

type Store struct {
	db              *gorm.DB
	logger          *zap.SugaredLogger
	transactionFunc database.TransactionFunc
	dialect         database.Dialect
}

func New(logger *zap.SugaredLogger, db *gorm.DB) (*Store, error) {
	transactionFunc, dialect, err := database.GetTransactionFunc(db)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:              db,
		logger:          logger,
		transactionFunc: transactionFunc,
		dialect:         dialect,
	}, nil
}
