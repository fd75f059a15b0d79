package impl

import (
	"context"
	"testing"

	"freeport/config"
	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/infra/memory"
	"freeport/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRevenueFixture(baseline []float64) usecase.RevenueUsecase {
	cfg := &config.Config{}
	cfg.Revenue.MonthlyTarget = 100000
	cfg.Revenue.QuarterlyTarget = 300000
	cfg.Revenue.YearlyTarget = 1200000

	return NewRevenueService(RevenueServiceParams{
		RevenueRepo: memory.NewRevenueRepository(baseline),
		Publisher:   &stubPublisher{},
		Config:      cfg,
		Logger:      testLogger(),
	})
}

func TestRevenueService_Record_InvalidStream(t *testing.T) {
	svc := newRevenueFixture(nil)

	err := svc.Record(context.Background(), "donations", 100)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStream)
}

func TestRevenueService_Forecast_UnavailableBelowThreePoints(t *testing.T) {
	svc := newRevenueFixture([]float64{35000, 42000})

	forecast, err := svc.Forecast(context.Background())
	require.NoError(t, err)
	assert.False(t, forecast.Available)
	assert.Equal(t, 2, forecast.Periods)
}

func TestRevenueService_Forecast_ClosedForm(t *testing.T) {
	svc := newRevenueFixture([]float64{35000, 42000, 48000, 52000, 58000})

	forecast, err := svc.Forecast(context.Background())
	require.NoError(t, err)

	require.True(t, forecast.Available)
	assert.InDelta(t, 5600.0, forecast.Slope, 1e-6)
	assert.InDelta(t, 35800.0, forecast.Intercept, 1e-6)
	assert.InDelta(t, 63800.0, forecast.NextValue, 1e-6)
	assert.GreaterOrEqual(t, forecast.NextValue, 58000.0)
}

func TestRevenueService_Forecast_FlooredAtZero(t *testing.T) {
	svc := newRevenueFixture([]float64{9000, 5000, 1000})

	forecast, err := svc.Forecast(context.Background())
	require.NoError(t, err)
	require.True(t, forecast.Available)
	assert.Zero(t, forecast.NextValue)
}

func TestRevenueService_Breakdown_SharesAndGoals(t *testing.T) {
	svc := newRevenueFixture(nil)
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, entity.StreamMarketplace, 30000))
	require.NoError(t, svc.Record(ctx, entity.StreamSubscriptions, 20000))

	breakdown, err := svc.Breakdown(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 50000.0, breakdown.Total, 1e-9)
	assert.InDelta(t, 0.6, breakdown.ByStream[entity.StreamMarketplace].Share, 1e-9)
	assert.InDelta(t, 0.4, breakdown.ByStream[entity.StreamSubscriptions].Share, 1e-9)
	assert.Zero(t, breakdown.ByStream[entity.StreamAds].Amount)

	assert.InDelta(t, 0.5, breakdown.Goals["monthly"].Progress, 1e-9)
	assert.InDelta(t, 0.5, breakdown.Goals["quarterly"].Progress, 1e-9)
	assert.InDelta(t, 0.5, breakdown.Goals["yearly"].Progress, 1e-9)
}

func TestRevenueService_ClosePeriod_FeedsForecastHistory(t *testing.T) {
	svc := newRevenueFixture(nil)
	ctx := context.Background()

	for _, amount := range []float64{35000, 42000, 48000} {
		require.NoError(t, svc.Record(ctx, entity.StreamMarketplace, amount))
		closed, err := svc.ClosePeriod(ctx)
		require.NoError(t, err)
		assert.InDelta(t, amount, closed, 1e-9)
	}

	forecast, err := svc.Forecast(ctx)
	require.NoError(t, err)
	assert.True(t, forecast.Available)
	assert.Equal(t, 3, forecast.Periods)

	// The open period restarts at zero after a close.
	breakdown, err := svc.Breakdown(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, breakdown.Goals["monthly"].Achieved, 1e-9)
}
