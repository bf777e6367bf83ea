package store

import (
	"context"

	"github.com/useeio-io/useeio-store/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertGwpFactors refreshes reference rows in place, keyed on
// (gas_name, ar_version).
func (s *Store) UpsertGwpFactors(ctx context.Context, rows []models.GwpFactor) error {
	ctx, span := tracer.Start(ctx, "UpsertGwpFactors")
	defer span.End()
	if len(rows) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "gas_name"}, {Name: "ar_version"}},
		UpdateAll: true,
	}).CreateInBatches(rows, insertBatchSize).Error
}

// ReplaceGwpFactors swaps the reference table wholesale.
func (s *Store) ReplaceGwpFactors(ctx context.Context, rows []models.GwpFactor) error {
	ctx, span := tracer.Start(ctx, "ReplaceGwpFactors")
	defer span.End()
	return s.transactionFunc(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM ipcc_ar_gwp").Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
}

// GwpFactor looks up one reference row by composite key.
func (s *Store) GwpFactor(ctx context.Context, gasName, arVersion string) (*models.GwpFactor, error) {
	ctx, span := tracer.Start(ctx, "GwpFactor")
	defer span.End()
	var g models.GwpFactor
	err := s.db.WithContext(ctx).
		Where("gas_name = ? AND ar_version = ?", gasName, arVersion).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}
