package store

import (
	"context"

	"github.com/useeio-io/useeio-store/internal/models"
	"gorm.io/gorm"
)

// ReplaceCharacterization reloads the characterization matrix for one
// model version.
func (s *Store) ReplaceCharacterization(ctx context.Context, modelVersion string, rows []models.CharacterizationFactor) error {
	ctx, span := tracer.Start(ctx, "ReplaceCharacterization")
	defer span.End()
	return s.transactionFunc(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM c WHERE model_version = ?", modelVersion).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
}

// CharacterizationFactor looks up one matrix cell by composite key.
func (s *Store) CharacterizationFactor(ctx context.Context, modelVersion, indicatorCode, flow string) (*models.CharacterizationFactor, error) {
	ctx, span := tracer.Start(ctx, "CharacterizationFactor")
	defer span.End()
	var c models.CharacterizationFactor
	err := s.db.WithContext(ctx).
		Where("model_version = ? AND indicator_code = ? AND flow = ?", modelVersion, indicatorCode, flow).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FlowFactor resolves a characterization factor against the active
// model version, the join the consuming application makes.
func (s *Store) FlowFactor(ctx context.Context, indicatorCode, flow string) (*models.CharacterizationFactor, error) {
	ctx, span := tracer.Start(ctx, "FlowFactor")
	defer span.End()
	var c models.CharacterizationFactor
	err := s.db.WithContext(ctx).Model(&models.CharacterizationFactor{}).
		Joins("JOIN model_metadata ON model_metadata.model_version = c.model_version AND model_metadata.is_active = ?", true).
		Where("c.indicator_code = ? AND c.flow = ?", indicatorCode, flow).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
