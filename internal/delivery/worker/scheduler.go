// Package worker contains the background simulation scheduler.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"freeport/config"
	"freeport/internal/delivery"
	"freeport/internal/domain/service"
	"freeport/internal/usecase"

	"go.uber.org/fx"
)

type scheduler struct {
	cfg    *config.Config
	logger *slog.Logger
	random service.RandomSource

	jobUC         usecase.JobUsecase
	blackMarketUC usecase.BlackMarketUsecase
	tradeRouteUC  usecase.TradeRouteUsecase
	smugglingUC   usecase.SmugglingUsecase

	cancel context.CancelFunc
	wg     sync.WaitGroup
	done   chan struct{}
}

// SchedulerParams holds dependencies for the simulation scheduler
type SchedulerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	Random        service.RandomSource
	JobUC         usecase.JobUsecase
	BlackMarketUC usecase.BlackMarketUsecase
	TradeRouteUC  usecase.TradeRouteUsecase
	SmugglingUC   usecase.SmugglingUsecase
}

// NewScheduler creates the ticker-driven world simulator
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := &scheduler{
		cfg:           params.Cfg,
		logger:        params.Logger,
		random:        params.Random,
		jobUC:         params.JobUC,
		blackMarketUC: params.BlackMarketUC,
		tradeRouteUC:  params.TradeRouteUC,
		smugglingUC:   params.SmugglingUC,
		done:          make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the simulation loops until the scheduler is stopped
func (s *scheduler) Serve(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	defer close(s.done)

	created, err := s.tradeRouteUC.InitializeRoutes(ctx)
	if err != nil {
		s.logger.Error("Failed to initialize trade routes", slog.Any("error", err))
	} else if created > 0 {
		s.logger.Info("Trade routes initialized", slog.Int("count", created))
	}

	s.logger.Info("Starting simulation scheduler",
		slog.Duration("jobInterval", s.cfg.Simulation.JobInterval),
		slog.Duration("driftInterval", s.cfg.Simulation.DriftInterval),
		slog.Duration("trafficInterval", s.cfg.Simulation.TrafficInterval),
		slog.Duration("runInterval", s.cfg.Simulation.RunInterval))

	s.loop(ctx, s.cfg.Simulation.JobInterval, s.tickJobs)
	s.loop(ctx, s.cfg.Simulation.DriftInterval, s.tickMarket)
	s.loop(ctx, s.cfg.Simulation.TrafficInterval, s.tickTraffic)
	s.loop(ctx, s.cfg.Simulation.RunInterval, s.tickRuns)

	<-ctx.Done()
	s.wg.Wait()

	return nil
}

// loop runs fn on every tick of interval until ctx is cancelled.
// A non-positive interval disables the loop.
func (s *scheduler) loop(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	if interval <= 0 {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	}()
}

func (s *scheduler) tickJobs(ctx context.Context) {
	if purged, err := s.jobUC.PurgeExpired(ctx); err != nil {
		s.logger.Warn("Failed to purge expired jobs", slog.Any("error", err))
	} else if purged > 0 {
		s.logger.Debug("Purged expired jobs", slog.Int("count", purged))
	}

	jobs, err := s.jobUC.GenerateJobs(ctx, s.cfg.Simulation.JobsPerTick)
	if err != nil {
		s.logger.Warn("Failed to generate jobs", slog.Any("error", err))

		return
	}
	s.logger.Debug("Generated jobs", slog.Int("count", len(jobs)))
}

func (s *scheduler) tickMarket(ctx context.Context) {
	if purged, err := s.blackMarketUC.PurgeExpired(ctx); err != nil {
		s.logger.Warn("Failed to purge expired listings", slog.Any("error", err))
	} else if purged > 0 {
		s.logger.Debug("Purged expired listings", slog.Int("count", purged))
	}

	if _, err := s.blackMarketUC.GenerateListing(ctx); err != nil {
		s.logger.Warn("Failed to generate market listing", slog.Any("error", err))
	}

	drifted, err := s.blackMarketUC.DriftPrices(ctx)
	if err != nil {
		s.logger.Warn("Failed to drift market prices", slog.Any("error", err))

		return
	}
	s.logger.Debug("Drifted market prices", slog.Int("count", drifted))
}

func (s *scheduler) tickTraffic(ctx context.Context) {
	if err := s.tradeRouteUC.SimulateTraffic(ctx); err != nil {
		s.logger.Warn("Failed to simulate route traffic", slog.Any("error", err))
	}
}

func (s *scheduler) tickRuns(ctx context.Context) {
	run, err := s.smugglingUC.LaunchRun(ctx)
	if err != nil {
		s.logger.Warn("Failed to launch smuggling run", slog.Any("error", err))

		return
	}

	delay := time.Duration(s.random.Between(
		float64(s.cfg.Simulation.MinResolveDelay),
		float64(s.cfg.Simulation.MaxResolveDelay)))

	s.logger.Debug("Launched smuggling run",
		slog.String("id", run.ID.String()),
		slog.Duration("resolveIn", delay))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if _, err := s.smugglingUC.ResolveRun(ctx, run.ID); err != nil {
			s.logger.Warn("Failed to resolve smuggling run",
				slog.String("id", run.ID.String()), slog.Any("error", err))
		}
	}()
}

// stop cancels the simulation loops and waits for them to drain
func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down simulation scheduler")

	if s.cancel != nil {
		s.cancel()
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
