package store

import (
	"context"

	"github.com/useeio-io/useeio-store/internal/models"
	"gorm.io/gorm"
)

func (s *Store) ReplaceIndicators(ctx context.Context, modelVersion string, rows []models.Indicator) error {
	ctx, span := tracer.Start(ctx, "ReplaceIndicators")
	defer span.End()
	return s.replaceForModel(ctx, "indicators", modelVersion, func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, insertBatchSize).Error
	}, len(rows))
}

func (s *Store) ReplaceSectorCrosswalk(ctx context.Context, modelVersion string, rows []models.SectorCrosswalk) error {
	ctx, span := tracer.Start(ctx, "ReplaceSectorCrosswalk")
	defer span.End()
	return s.replaceForModel(ctx, "sector_crosswalk", modelVersion, func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, insertBatchSize).Error
	}, len(rows))
}

func (s *Store) ReplaceCommodities(ctx context.Context, modelVersion string, rows []models.CommodityMeta) error {
	ctx, span := tracer.Start(ctx, "ReplaceCommodities")
	defer span.End()
	return s.replaceForModel(ctx, "commodities_meta", modelVersion, func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, insertBatchSize).Error
	}, len(rows))
}

func (s *Store) ReplaceRho(ctx context.Context, modelVersion string, rows []models.Rho) error {
	ctx, span := tracer.Start(ctx, "ReplaceRho")
	defer span.End()
	return s.replaceForModel(ctx, "rho", modelVersion, func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, insertBatchSize).Error
	}, len(rows))
}

func (s *Store) ReplaceImpacts(ctx context.Context, modelVersion string, rows []models.Impact) error {
	ctx, span := tracer.Start(ctx, "ReplaceImpacts")
	defer span.End()
	return s.replaceForModel(ctx, "impacts", modelVersion, func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, insertBatchSize).Error
	}, len(rows))
}

// replaceForModel deletes a model version's rows from one table and
// runs the insert inside the same transaction.
func (s *Store) replaceForModel(ctx context.Context, table, modelVersion string, insert func(tx *gorm.DB) error, n int) error {
	return s.transactionFunc(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+table+" WHERE model_version = ?", modelVersion).Error; err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		return insert(tx)
	})
}

func (s *Store) Indicators(ctx context.Context, modelVersion string) ([]models.Indicator, error) {
	ctx, span := tracer.Start(ctx, "Indicators")
	defer span.End()
	var out []models.Indicator
	if err := s.db.WithContext(ctx).Where("model_version = ?", modelVersion).Order("code").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// RhoSeries returns the deflator series for one sector/region, ordered
// by year.
func (s *Store) RhoSeries(ctx context.Context, modelVersion, sectorCode, region string) ([]models.Rho, error) {
	ctx, span := tracer.Start(ctx, "RhoSeries")
	defer span.End()
	var out []models.Rho
	err := s.db.WithContext(ctx).
		Where("model_version = ? AND sector_code = ? AND region = ?", modelVersion, sectorCode, region).
		Order("year").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
