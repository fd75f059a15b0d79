package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"freeport/config"
	"freeport/internal/domain/entity"
	"freeport/internal/infra/random"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJobUC struct {
	usecase.JobUsecase

	generated atomic.Int64
	purged    atomic.Int64
}

func (s *stubJobUC) GenerateJobs(_ context.Context, count int) ([]*entity.Job, error) {
	s.generated.Add(int64(count))

	return nil, nil
}

func (s *stubJobUC) PurgeExpired(_ context.Context) (int, error) {
	s.purged.Add(1)

	return 0, nil
}

type stubMarketUC struct {
	usecase.BlackMarketUsecase

	drifted atomic.Int64
}

func (s *stubMarketUC) GenerateListing(_ context.Context) (*entity.BlackMarketListing, error) {
	return &entity.BlackMarketListing{ID: uuid.New()}, nil
}

func (s *stubMarketUC) DriftPrices(_ context.Context) (int, error) {
	s.drifted.Add(1)

	return 0, nil
}

func (s *stubMarketUC) PurgeExpired(_ context.Context) (int, error) {
	return 0, nil
}

type stubRouteUC struct {
	usecase.TradeRouteUsecase

	initialized atomic.Int64
	steps       atomic.Int64
}

func (s *stubRouteUC) InitializeRoutes(_ context.Context) (int, error) {
	s.initialized.Add(1)

	return 15, nil
}

func (s *stubRouteUC) SimulateTraffic(_ context.Context) error {
	s.steps.Add(1)

	return nil
}

type stubSmugglingUC struct {
	usecase.SmugglingUsecase

	launched atomic.Int64
	resolved atomic.Int64
}

func (s *stubSmugglingUC) LaunchRun(_ context.Context) (*entity.SmugglingRun, error) {
	s.launched.Add(1)

	return &entity.SmugglingRun{ID: uuid.New()}, nil
}

func (s *stubSmugglingUC) ResolveRun(_ context.Context, id uuid.UUID) (*entity.SmugglingRun, error) {
	s.resolved.Add(1)

	return &entity.SmugglingRun{ID: id}, nil
}

func testConfig(interval time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Simulation.JobInterval = interval
	cfg.Simulation.JobsPerTick = 3
	cfg.Simulation.DriftInterval = interval
	cfg.Simulation.TrafficInterval = interval
	cfg.Simulation.RunInterval = interval
	cfg.Simulation.MinResolveDelay = time.Millisecond
	cfg.Simulation.MaxResolveDelay = 2 * time.Millisecond

	return cfg
}

func newTestScheduler(cfg *config.Config, jobs *stubJobUC, market *stubMarketUC, routes *stubRouteUC, runs *stubSmugglingUC) *scheduler {
	return &scheduler{
		cfg:           cfg,
		logger:        slog.New(slog.DiscardHandler),
		random:        random.NewWithSeed(1),
		jobUC:         jobs,
		blackMarketUC: market,
		tradeRouteUC:  routes,
		smugglingUC:   runs,
		done:          make(chan struct{}),
	}
}

func TestScheduler_TicksAllLoops(t *testing.T) {
	t.Parallel()

	jobs := &stubJobUC{}
	market := &stubMarketUC{}
	routes := &stubRouteUC{}
	runs := &stubSmugglingUC{}
	s := newTestScheduler(testConfig(10*time.Millisecond), jobs, market, routes, runs)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ctx)
	}()

	assert.Eventually(t, func() bool {
		return jobs.generated.Load() >= 3 &&
			market.drifted.Load() >= 1 &&
			routes.steps.Load() >= 1 &&
			runs.launched.Load() >= 1 &&
			runs.resolved.Load() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-errCh)

	assert.EqualValues(t, 1, routes.initialized.Load())
	assert.GreaterOrEqual(t, jobs.purged.Load(), int64(1))
}

func TestScheduler_DisabledIntervals(t *testing.T) {
	t.Parallel()

	jobs := &stubJobUC{}
	market := &stubMarketUC{}
	routes := &stubRouteUC{}
	runs := &stubSmugglingUC{}
	s := newTestScheduler(testConfig(0), jobs, market, routes, runs)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-errCh)

	assert.Zero(t, jobs.generated.Load())
	assert.Zero(t, market.drifted.Load())
	assert.Zero(t, runs.launched.Load())
	// Route initialization still runs once at startup.
	assert.EqualValues(t, 1, routes.initialized.Load())
}

func TestScheduler_StopWaitsForServe(t *testing.T) {
	t.Parallel()

	jobs := &stubJobUC{}
	market := &stubMarketUC{}
	routes := &stubRouteUC{}
	runs := &stubSmugglingUC{}
	s := newTestScheduler(testConfig(10*time.Millisecond), jobs, market, routes, runs)

	go func() {
		_ = s.Serve(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return runs.launched.Load() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.stop(stopCtx))

	select {
	case <-s.done:
	default:
		t.Fatal("scheduler did not drain after stop")
	}
}
