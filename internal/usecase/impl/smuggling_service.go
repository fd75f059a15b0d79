package impl

import (
	"context"
	"log/slog"
	"time"

	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/domain/repository"
	"freeport/internal/domain/service"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type smugglingService struct {
	runRepo   repository.SmugglingRepository
	content   service.ContentProvider
	random    service.RandomSource
	revenue   service.RevenueRecorder
	publisher service.EventPublisher
	logger    *slog.Logger
}

// SmugglingServiceParams holds dependencies for SmugglingService, injected by Fx.
type SmugglingServiceParams struct {
	fx.In

	RunRepo   repository.SmugglingRepository
	Content   service.ContentProvider
	Random    service.RandomSource
	Revenue   service.RevenueRecorder
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSmugglingService creates a new smuggling run service instance
func NewSmugglingService(params SmugglingServiceParams) usecase.SmugglingUsecase {
	return &smugglingService{
		runRepo:   params.RunRepo,
		content:   params.Content,
		random:    params.Random,
		revenue:   params.Revenue,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// LaunchRun starts a run from a random profile between two random distinct
// locations
func (s *smugglingService) LaunchRun(ctx context.Context) (*entity.SmugglingRun, error) {
	profiles := s.content.RunProfiles(ctx)
	if len(profiles) == 0 {
		return nil, errors.New("run profile catalog is empty")
	}

	profile := profiles[s.random.Intn(len(profiles))]
	origin, destination := s.pickEndpoints()

	run := &entity.SmugglingRun{
		ID:          uuid.New(),
		Cargo:       profile.Cargo,
		Origin:      origin,
		Destination: destination,
		Value:       s.random.Between(profile.MinValue, profile.MaxValue),
		Tier:        profile.Tier,
		Status:      entity.RunStatusRunning,
		StartedAt:   time.Now(),
	}

	if err := s.runRepo.CreateRun(ctx, run); err != nil {
		return nil, errors.Wrap(err, "failed to create run")
	}

	return run, nil
}

// ResolveRun settles a running run with a single interception draw against
// the tier's profile. The outcome is decided exactly once; the resolved run
// moves to the bounded history buffer.
func (s *smugglingService) ResolveRun(ctx context.Context, id uuid.UUID) (*entity.SmugglingRun, error) {
	run, err := s.runRepo.FindRunByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			return nil, domainerrors.ErrRunNotFound
		}

		return nil, errors.Wrap(err, "failed to find run")
	}

	profile := entity.ProfileForTier(run.Tier)
	now := time.Now()
	run.ResolvedAt = &now

	if s.random.Chance(profile.InterceptChance) {
		run.Status = entity.RunStatusIntercepted
	} else {
		run.Status = entity.RunStatusDelivered
		run.Payout = run.Value * profile.RewardMultiplier
	}

	if err := s.runRepo.ResolveRun(ctx, run); err != nil {
		return nil, errors.Wrap(err, "failed to resolve run")
	}

	if run.Status == entity.RunStatusDelivered {
		if err := s.revenue.Record(ctx, entity.StreamMerchandise, run.Payout); err != nil {
			s.logger.Warn("Failed to record run payout revenue",
				slog.String("run_id", run.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	if err := s.publisher.PublishPlatformEvent(ctx, &service.PlatformEvent{
		Kind:    "smuggling.resolved",
		Subject: run.ID.String(),
		Amount:  run.Payout,
		Detail:  string(run.Status),
	}); err != nil {
		s.logger.Warn("Failed to publish run event", slog.Any("error", err))
	}

	return run, nil
}

// ActiveRuns retrieves runs not yet resolved
func (s *smugglingService) ActiveRuns(ctx context.Context) ([]*entity.SmugglingRun, error) {
	runs, err := s.runRepo.ActiveRuns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active runs")
	}

	return runs, nil
}

// RecentRuns retrieves the capped resolution history, oldest first
func (s *smugglingService) RecentRuns(ctx context.Context) ([]*entity.SmugglingRun, error) {
	runs, err := s.runRepo.RecentRuns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent runs")
	}

	return runs, nil
}

// pickEndpoints draws two distinct locations from the trade network.
func (s *smugglingService) pickEndpoints() (origin, destination string) {
	i := s.random.Intn(len(knownLocations))
	j := s.random.Intn(len(knownLocations) - 1)
	if j >= i {
		j++
	}

	return knownLocations[i].Name, knownLocations[j].Name
}
