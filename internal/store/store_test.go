package store

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/useeio-io/useeio-store/internal/database"
	"github.com/useeio-io/useeio-store/internal/models"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type StoreTestSuite struct {
	suite.Suite
	db    *gorm.DB
	store *Store
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{})
}

func (s *StoreTestSuite) SetupSuite() {
	logger := zaptest.NewLogger(s.T()).Sugar()
	db, err := database.NewTestDatabase(logger)
	s.Require().NoError(err)
	s.db = db
	s.store, err = New(logger, db)
	s.Require().NoError(err)
}

// SetupTest clears everything except the seeded GWP reference table.
func (s *StoreTestSuite) SetupTest() {
	for _, table := range []string{
		"impacts", "c", "rho", "sector_crosswalk", "commodities_meta",
		"indicators", "load_runs", "model_metadata",
	} {
		s.Require().NoError(s.db.Exec("DELETE FROM " + table).Error)
	}
}

func intPtr(v int) *int { return &v }

func (s *StoreTestSuite) TestModelMetadataDefaults() {
	ctx := context.Background()
	err := s.db.Exec("INSERT INTO model_metadata (model_version) VALUES (?)", "v0.9").Error
	s.Require().NoError(err)

	var m models.ModelMetadata
	s.Require().NoError(s.db.WithContext(ctx).First(&m, "model_version = ?", "v0.9").Error)
	s.False(m.IsActive)
	s.False(m.CreatedAt.IsZero())
	s.False(m.UpdatedAt.IsZero())
}

func (s *StoreTestSuite) TestUpdatedAtTriggerWins() {
	ctx := context.Background()
	s.Require().NoError(s.store.UpsertModelMetadata(ctx, &models.ModelMetadata{
		ModelVersion: "v2.0",
		EconomicYear: intPtr(2017),
	}))

	// Even a client that writes a stale updated_at loses to the trigger.
	stale := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	err := s.db.Model(&models.ModelMetadata{}).
		Where("model_version = ?", "v2.0").
		Updates(map[string]interface{}{
			"economic_year": 2018,
			"updated_at":    stale,
		}).Error
	s.Require().NoError(err)

	var m models.ModelMetadata
	s.Require().NoError(s.db.First(&m, "model_version = ?", "v2.0").Error)
	s.Require().NotNil(m.EconomicYear)
	s.Equal(2018, *m.EconomicYear)
	s.Greater(m.UpdatedAt.Year(), 2000)
}

func (s *StoreTestSuite) TestUpsertModelMetadataIsIdempotent() {
	ctx := context.Background()
	m := &models.ModelMetadata{ModelVersion: "v2.1", EconomicYear: intPtr(2017)}
	s.Require().NoError(s.store.UpsertModelMetadata(ctx, m))
	m.EconomicYear = intPtr(2018)
	s.Require().NoError(s.store.UpsertModelMetadata(ctx, m))

	list, err := s.store.ListModels(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Require().NotNil(list[0].EconomicYear)
	s.Equal(2018, *list[0].EconomicYear)
}

func (s *StoreTestSuite) TestSetActiveModel() {
	ctx := context.Background()
	for _, v := range []string{"v2.0", "v2.1"} {
		s.Require().NoError(s.store.UpsertModelMetadata(ctx, &models.ModelMetadata{ModelVersion: v}))
	}
	s.Require().NoError(s.store.SetActiveModel(ctx, "v2.0"))
	s.Require().NoError(s.store.SetActiveModel(ctx, "v2.1"))

	active, err := s.store.ActiveModel(ctx)
	s.Require().NoError(err)
	s.Equal("v2.1", active.ModelVersion)

	var count int64
	s.Require().NoError(s.db.Model(&models.ModelMetadata{}).Where("is_active = ?", true).Count(&count).Error)
	s.Equal(int64(1), count)

	err = s.store.SetActiveModel(ctx, "no-such-version")
	s.Require().ErrorIs(err, ErrModelNotFound)
}

func (s *StoreTestSuite) TestGwpSeedLookups() {
	ctx := context.Background()
	g, err := s.store.GwpFactor(ctx, "Methane – non-fossil", "AR5")
	s.Require().NoError(err)
	s.Require().NotNil(g.GwpValue)
	s.Equal(float64(28), *g.GwpValue)
	s.Equal("28", g.DisplayValue())

	// Bound-only rows carry a display string and no numeric value.
	g, err = s.store.GwpFactor(ctx, "HFO-1132a", "AR5")
	s.Require().NoError(err)
	s.Nil(g.GwpValue)
	s.Equal("<1", g.DisplayValue())
}

func (s *StoreTestSuite) TestGwpDuplicateKeyRejected() {
	err := s.db.Create(&models.GwpFactor{
		GasName:   "Methane – non-fossil",
		ArVersion: "AR5",
	}).Error
	s.Require().Error(err)
	s.True(database.IsDuplicateError(err))
}

func (s *StoreTestSuite) TestUpsertGwpFactors() {
	ctx := context.Background()
	value := 365.0
	rows := []models.GwpFactor{{GasName: "Testane", ArVersion: "AR6", GwpValue: &value}}
	s.Require().NoError(s.store.UpsertGwpFactors(ctx, rows))

	value = 400.0
	s.Require().NoError(s.store.UpsertGwpFactors(ctx, rows))

	g, err := s.store.GwpFactor(ctx, "Testane", "AR6")
	s.Require().NoError(err)
	s.Require().NotNil(g.GwpValue)
	s.Equal(400.0, *g.GwpValue)

	s.Require().NoError(s.db.Exec("DELETE FROM ipcc_ar_gwp WHERE gas_name = ?", "Testane").Error)
}

func (s *StoreTestSuite) TestCharacterizationValueNotNull() {
	err := s.db.Exec(
		"INSERT INTO c (model_version, indicator_code, flow) VALUES (?, ?, ?)",
		"v2.1", "GWP", "Methane/emission/air/kg",
	).Error
	s.Require().Error(err)
}

func (s *StoreTestSuite) TestCharacterizationKeyAllowsFlowVariants() {
	ctx := context.Background()
	rows := []models.CharacterizationFactor{
		{ModelVersion: "v2.1", IndicatorCode: "GWP", Flow: "Methane/emission/air/kg", Value: 28},
		{ModelVersion: "v2.1", IndicatorCode: "GWP", Flow: "Methane/emission/water/kg", Value: 28},
	}
	s.Require().NoError(s.store.ReplaceCharacterization(ctx, "v2.1", rows))

	var count int64
	s.Require().NoError(s.db.Model(&models.CharacterizationFactor{}).Count(&count).Error)
	s.Equal(int64(2), count)
}

func (s *StoreTestSuite) TestFlowFactorAgainstActiveModel() {
	ctx := context.Background()
	s.Require().NoError(s.store.UpsertModelMetadata(ctx, &models.ModelMetadata{
		ModelVersion:     "v2.1",
		EconomicYear:     intPtr(2018),
		SatelliteYearMin: intPtr(2015),
		SatelliteYearMax: intPtr(2020),
	}))
	s.Require().NoError(s.store.SetActiveModel(ctx, "v2.1"))
	s.Require().NoError(s.store.ReplaceCharacterization(ctx, "v2.1", []models.CharacterizationFactor{
		{ModelVersion: "v2.1", IndicatorCode: "GWP", Flow: "Methane/emission/air/kg", Value: 28},
	}))

	c, err := s.store.FlowFactor(ctx, "GWP", "Methane/emission/air/kg")
	s.Require().NoError(err)
	s.Equal("v2.1", c.ModelVersion)
	s.Equal(float64(28), c.Value)

	// The reference table agrees with the matrix cell for this flow.
	g, err := s.store.GwpFactor(ctx, "Methane – non-fossil", "AR5")
	s.Require().NoError(err)
	s.Require().NotNil(g.GwpValue)
	s.Equal(*g.GwpValue, c.Value)
}

func (s *StoreTestSuite) TestDeleteModelVersion() {
	ctx := context.Background()
	s.Require().NoError(s.store.UpsertModelMetadata(ctx, &models.ModelMetadata{ModelVersion: "v2.0"}))
	s.Require().NoError(s.store.ReplaceCharacterization(ctx, "v2.0", []models.CharacterizationFactor{
		{ModelVersion: "v2.0", IndicatorCode: "GWP", Flow: "Methane/emission/air/kg", Value: 25},
	}))
	name := "Jobs Supported"
	s.Require().NoError(s.store.ReplaceIndicators(ctx, "v2.0", []models.Indicator{
		{ModelVersion: "v2.0", Code: "JOBS", Name: &name},
	}))

	s.Require().NoError(s.store.DeleteModelVersion(ctx, "v2.0"))

	for _, table := range []string{"model_metadata", "c", "indicators"} {
		var count int64
		s.Require().NoError(s.db.Table(table).Where("model_version = ?", "v2.0").Count(&count).Error)
		s.Equal(int64(0), count, table)
	}
}

func (s *StoreTestSuite) TestSatelliteReplaceIsWholesale() {
	ctx := context.Background()
	s.Require().NoError(s.store.ReplaceRho(ctx, "v2.1", []models.Rho{
		{ModelVersion: "v2.1", SectorCode: "1111A0", Region: "US", Year: 2015, RhoValue: 0.97},
		{ModelVersion: "v2.1", SectorCode: "1111A0", Region: "US", Year: 2016, RhoValue: 0.98},
	}))
	s.Require().NoError(s.store.ReplaceRho(ctx, "v2.1", []models.Rho{
		{ModelVersion: "v2.1", SectorCode: "1111A0", Region: "US", Year: 2017, RhoValue: 1.0},
	}))

	series, err := s.store.RhoSeries(ctx, "v2.1", "1111A0", "US")
	s.Require().NoError(err)
	s.Require().Len(series, 1)
	s.Equal(2017, series[0].Year)
}

func (s *StoreTestSuite) TestReplaceModelData() {
	ctx := context.Background()
	s.Require().NoError(s.store.UpsertModelMetadata(ctx, &models.ModelMetadata{ModelVersion: "v2.0"}))
	s.Require().NoError(s.store.SetActiveModel(ctx, "v2.0"))

	unit := "kg CO2 eq"
	err := s.store.ReplaceModelData(ctx, &ModelData{
		Metadata: models.ModelMetadata{
			ModelVersion: "v2.1",
			EconomicYear: intPtr(2018),
		},
		Indicators: []models.Indicator{
			{ModelVersion: "v2.1", Code: "GWP", Unit: &unit},
		},
		Characterization: []models.CharacterizationFactor{
			{ModelVersion: "v2.1", IndicatorCode: "GWP", Flow: "Methane/emission/air/kg", Value: 28},
		},
		Impacts: []models.Impact{
			{ModelVersion: "v2.1", ImpactType: models.ImpactTypeTotal, IndicatorCode: "GWP", SectorCode: "1111A0", Region: "US", Value: 0.61},
		},
	})
	s.Require().NoError(err)

	// The loaded version is now the active one.
	active, activeErr := s.store.ActiveModel(ctx)
	s.Require().NoError(activeErr)
	s.Equal("v2.1", active.ModelVersion)

	c, err := s.store.FlowFactor(ctx, "GWP", "Methane/emission/air/kg")
	s.Require().NoError(err)
	s.Equal(float64(28), c.Value)

	var runs []models.LoadRun
	s.Require().NoError(s.db.Where("model_version = ?", "v2.1").Find(&runs).Error)
	s.Require().Len(runs, 1)
	s.Equal(models.LoadRunStatusComplete, runs[0].Status)
	s.Require().NotNil(runs[0].CompletedAt)
}

func (s *StoreTestSuite) TestLoadRunRecordsFailure() {
	ctx := context.Background()
	run, err := s.store.StartLoadRun(ctx, "v2.1")
	s.Require().NoError(err)
	s.Equal(models.LoadRunStatusRunning, run.Status)

	s.Require().NoError(s.store.FinishLoadRun(ctx, run.ID, errors.New("workbook missing sheet C")))

	var got models.LoadRun
	s.Require().NoError(s.db.First(&got, "id = ?", run.ID).Error)
	s.Equal(models.LoadRunStatusFailed, got.Status)
	s.Require().NotNil(got.Error)
	s.Equal("workbook missing sheet C", *got.Error)
}

func TestDisplayValueFallback(t *testing.T) {
	value := 28.0
	display := "<1"
	g := models.GwpFactor{GwpValue: &value}
	require.Equal(t, "28", g.DisplayValue())
	g = models.GwpFactor{GwpDisplay: &display}
	require.Equal(t, "<1", g.DisplayValue())
	require.Equal(t, "", (&models.GwpFactor{}).DisplayValue())
}
