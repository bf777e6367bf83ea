package store

import (
	"context"

	"github.com/useeio-io/useeio-store/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// modelTables lists every per-model table in the order the loader
// clears them; model_metadata goes last.
var modelTables = []string{
	"impacts", "c", "rho", "sector_crosswalk", "commodities_meta", "indicators", "model_metadata",
}

// UpsertModelMetadata inserts or updates the row for m.ModelVersion.
// created_at and updated_at are left to the column defaults and the
// update trigger.
func (s *Store) UpsertModelMetadata(ctx context.Context, m *models.ModelMetadata) error {
	ctx, span := tracer.Start(ctx, "UpsertModelMetadata")
	defer span.End()
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "model_version"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"economic_year", "satellite_year_min", "satellite_year_max", "is_active",
		}),
	}).Create(m).Error
}

// SetActiveModel marks one model version active and every other version
// inactive in a single transaction. The schema itself does not enforce
// a single active row; this is where that invariant lives.
func (s *Store) SetActiveModel(ctx context.Context, modelVersion string) error {
	ctx, span := tracer.Start(ctx, "SetActiveModel")
	defer span.End()
	return s.transactionFunc(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.ModelMetadata{}).
			Where("model_version = ?", modelVersion).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrModelNotFound
		}
		return tx.Model(&models.ModelMetadata{}).
			Where("model_version <> ?", modelVersion).
			Update("is_active", false).Error
	})
}

// ActiveModel returns the model version consumers should read.
func (s *Store) ActiveModel(ctx context.Context) (*models.ModelMetadata, error) {
	ctx, span := tracer.Start(ctx, "ActiveModel")
	defer span.End()
	var m models.ModelMetadata
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) ListModels(ctx context.Context) ([]models.ModelMetadata, error) {
	ctx, span := tracer.Start(ctx, "ListModels")
	defer span.End()
	var out []models.ModelMetadata
	if err := s.db.WithContext(ctx).Order("model_version").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteModelVersion clears every per-model table for one version, in
// the same order the loader does before a re-load.
func (s *Store) DeleteModelVersion(ctx context.Context, modelVersion string) error {
	ctx, span := tracer.Start(ctx, "DeleteModelVersion")
	defer span.End()
	return s.transactionFunc(ctx, func(tx *gorm.DB) error {
		return deleteModelVersion(tx, modelVersion)
	})
}

func deleteModelVersion(tx *gorm.DB, modelVersion string) error {
	for _, table := range modelTables {
		if err := tx.Exec("DELETE FROM "+table+" WHERE model_version = ?", modelVersion).Error; err != nil {
			return err
		}
	}
	return nil
}
