package impl

import (
	"context"
	"log/slog"

	"freeport/config"
	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/domain/repository"
	"freeport/internal/domain/service"
	"freeport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minForecastPoints is the minimum closed periods a least-squares fit needs.
const minForecastPoints = 3

type revenueService struct {
	revenueRepo repository.RevenueRepository
	publisher   service.EventPublisher
	config      *config.Config
	logger      *slog.Logger
}

// RevenueServiceParams holds dependencies for RevenueService, injected by Fx.
type RevenueServiceParams struct {
	fx.In

	RevenueRepo repository.RevenueRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRevenueService creates a new revenue aggregation service instance
func NewRevenueService(params RevenueServiceParams) usecase.RevenueUsecase {
	return &revenueService{
		revenueRepo: params.RevenueRepo,
		publisher:   params.Publisher,
		config:      params.Config,
		logger:      params.Logger,
	}
}

// Record adds revenue to one of the fixed streams
func (s *revenueService) Record(ctx context.Context, stream entity.RevenueStream, amount float64) error {
	if !entity.ValidStream(stream) {
		return domainerrors.ErrInvalidStream
	}

	if err := s.revenueRepo.AddRevenue(ctx, stream, amount); err != nil {
		return errors.Wrap(err, "failed to add revenue")
	}

	return nil
}

// Forecast projects the next period by ordinary least squares over the
// closed-period series. Fewer than three points means no forecast; a
// negative projection is floored at zero.
func (s *revenueService) Forecast(ctx context.Context) (*usecase.Forecast, error) {
	history, err := s.revenueRepo.History(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load revenue history")
	}

	forecast := &usecase.Forecast{Periods: len(history)}
	if len(history) < minForecastPoints {
		return forecast, nil
	}

	slope, intercept := leastSquares(history)
	next := slope*float64(len(history)) + intercept
	if next < 0 {
		next = 0
	}

	forecast.Available = true
	forecast.Slope = slope
	forecast.Intercept = intercept
	forecast.NextValue = next

	return forecast, nil
}

// Breakdown reports per-stream shares and goal progress
func (s *revenueService) Breakdown(ctx context.Context) (*usecase.RevenueBreakdown, error) {
	totals, err := s.revenueRepo.StreamTotals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stream totals")
	}
	periodTotal, err := s.revenueRepo.PeriodTotal(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load period total")
	}

	breakdown := &usecase.RevenueBreakdown{
		ByStream: make(map[entity.RevenueStream]usecase.StreamShare),
		Goals:    make(map[string]usecase.GoalProgress),
	}

	for _, total := range totals {
		breakdown.Total += total
	}
	for _, stream := range entity.RevenueStreams() {
		share := usecase.StreamShare{Amount: totals[stream]}
		if breakdown.Total > 0 {
			share.Share = totals[stream] / breakdown.Total
		}
		breakdown.ByStream[stream] = share
	}

	// Quarterly and yearly progress scale the open period by 3x and 12x.
	targets := s.config.Revenue
	breakdown.Goals["monthly"] = goalProgress(periodTotal, targets.MonthlyTarget)
	breakdown.Goals["quarterly"] = goalProgress(periodTotal*3, targets.QuarterlyTarget)
	breakdown.Goals["yearly"] = goalProgress(periodTotal*12, targets.YearlyTarget)

	return breakdown, nil
}

// ClosePeriod rolls the running period total into the history series
func (s *revenueService) ClosePeriod(ctx context.Context) (float64, error) {
	closed, err := s.revenueRepo.ClosePeriod(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to close revenue period")
	}

	if err := s.publisher.PublishPlatformEvent(ctx, &service.PlatformEvent{
		Kind:   "revenue.period_closed",
		Amount: closed,
	}); err != nil {
		s.logger.Warn("Failed to publish period close event", slog.Any("error", err))
	}

	return closed, nil
}

func goalProgress(achieved, target float64) usecase.GoalProgress {
	progress := usecase.GoalProgress{Target: target, Achieved: achieved}
	if target > 0 {
		progress.Progress = achieved / target
	}

	return progress
}

// leastSquares fits y = slope*x + intercept with x = 0..n-1.
func leastSquares(series []float64) (slope, intercept float64) {
	n := float64(len(series))

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	return slope, intercept
}
