package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/useeio-io/useeio-store/internal/models"
	"github.com/useeio-io/useeio-store/internal/util"
	"gorm.io/gorm"
)

// StartLoadRun opens an audit row for a loader pass.
func (s *Store) StartLoadRun(ctx context.Context, modelVersion string) (*models.LoadRun, error) {
	ctx, span := tracer.Start(ctx, "StartLoadRun")
	defer span.End()
	run := &models.LoadRun{
		ID:           uuid.New(),
		ModelVersion: modelVersion,
		Status:       models.LoadRunStatusRunning,
	}
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}
	util.WithTrace(ctx, s.logger).Infof("load run %s started for model %s", run.ID, modelVersion)
	return run, nil
}

// FinishLoadRun closes an audit row, recording the failure message when
// runErr is non-nil.
func (s *Store) FinishLoadRun(ctx context.Context, id uuid.UUID, runErr error) error {
	ctx, span := tracer.Start(ctx, "FinishLoadRun")
	defer span.End()
	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.LoadRunStatusComplete,
		"completed_at": &now,
	}
	if runErr != nil {
		msg := runErr.Error()
		updates["status"] = models.LoadRunStatusFailed
		updates["error"] = &msg
	}
	return s.db.WithContext(ctx).Model(&models.LoadRun{}).Where("id = ?", id).Updates(updates).Error
}

// ModelData is one loader pass worth of tables for a model version.
type ModelData struct {
	Metadata         models.ModelMetadata
	Indicators       []models.Indicator
	SectorCrosswalk  []models.SectorCrosswalk
	Commodities      []models.CommodityMeta
	Rho              []models.Rho
	Impacts          []models.Impact
	Characterization []models.CharacterizationFactor
}

// ReplaceModelData replays the loader's flow for one model version in a
// single transaction: purge the version's rows, upsert its metadata as
// the active model, deactivate every other version, then bulk-insert
// the per-model tables. The pass is bracketed by a load run audit row.
func (s *Store) ReplaceModelData(ctx context.Context, data *ModelData) error {
	ctx, span := tracer.Start(ctx, "ReplaceModelData")
	defer span.End()

	modelVersion := data.Metadata.ModelVersion
	run, err := s.StartLoadRun(ctx, modelVersion)
	if err != nil {
		return err
	}

	err = s.transactionFunc(ctx, func(tx *gorm.DB) error {
		if err := deleteModelVersion(tx, modelVersion); err != nil {
			return err
		}
		metadata := data.Metadata
		metadata.IsActive = true
		if err := tx.Create(&metadata).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ModelMetadata{}).
			Where("model_version <> ?", modelVersion).
			Update("is_active", false).Error; err != nil {
			return err
		}
		for _, insert := range []func() error{
			func() error { return createInBatches(tx, data.Indicators) },
			func() error { return createInBatches(tx, data.SectorCrosswalk) },
			func() error { return createInBatches(tx, data.Commodities) },
			func() error { return createInBatches(tx, data.Rho) },
			func() error { return createInBatches(tx, data.Impacts) },
			func() error { return createInBatches(tx, data.Characterization) },
		} {
			if err := insert(); err != nil {
				return err
			}
		}
		return nil
	})

	if finishErr := s.FinishLoadRun(ctx, run.ID, err); finishErr != nil {
		util.WithTrace(ctx, s.logger).Warnf("could not finish load run %s: %s", run.ID, finishErr)
	}
	return err
}

func createInBatches[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, insertBatchSize).Error
}
