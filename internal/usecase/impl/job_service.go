package impl

import (
	"context"
	"log/slog"
	"time"

	"freeport/config"
	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/domain/repository"
	"freeport/internal/domain/service"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type jobService struct {
	jobRepo repository.JobRepository
	content service.ContentProvider
	random  service.RandomSource
	revenue service.RevenueRecorder
	config  *config.Config
	logger  *slog.Logger
}

// JobServiceParams holds dependencies for JobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	JobRepo repository.JobRepository
	Content service.ContentProvider
	Random  service.RandomSource
	Revenue service.RevenueRecorder
	Config  *config.Config
	Logger  *slog.Logger
}

// NewJobService creates a new job board service instance
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		jobRepo: params.JobRepo,
		content: params.Content,
		random:  params.Random,
		revenue: params.Revenue,
		config:  params.Config,
		logger:  params.Logger,
	}
}

// GenerateJobs creates count jobs from the weighted template catalog
func (s *jobService) GenerateJobs(ctx context.Context, count int) ([]*entity.Job, error) {
	templates := s.content.JobTemplates(ctx)
	if len(templates) == 0 {
		return nil, nil
	}

	jobs := make([]*entity.Job, 0, count)
	for i := 0; i < count; i++ {
		template := s.pickTemplate(templates)
		now := time.Now()

		job := &entity.Job{
			ID:          uuid.New(),
			Type:        template.Type,
			Description: s.pickDescription(template),
			Payout:      s.random.Between(template.MinPayout, template.MaxPayout),
			Duration:    s.randomDuration(template.MinDuration, template.MaxDuration),
			Status:      entity.JobStatusAvailable,
			Deadline:    now.Add(s.config.Simulation.JobTTL),
			CreatedAt:   now,
		}

		if err := s.jobRepo.CreateJob(ctx, job); err != nil {
			return nil, errors.Wrap(err, "failed to create job")
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// ListJobs retrieves all jobs in insertion order
func (s *jobService) ListJobs(ctx context.Context) ([]*entity.Job, error) {
	jobs, err := s.jobRepo.AllJobs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return jobs, nil
}

// AcceptJob moves an available job to active
func (s *jobService) AcceptJob(ctx context.Context, id uuid.UUID, contractorID string) (*entity.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job")
	}

	if job.Status != entity.JobStatusAvailable {
		return nil, domainerrors.ErrInvalidJobState
	}

	job.Status = entity.JobStatusActive
	job.AcceptedBy = contractorID

	if err := s.jobRepo.UpdateJob(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to accept job")
	}

	return job, nil
}

// CompleteJob resolves an active job as completed or failed. A completed
// job pays its payout into partnership revenue.
func (s *jobService) CompleteJob(ctx context.Context, id uuid.UUID, success bool) (*entity.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job")
	}

	if job.Status != entity.JobStatusActive {
		return nil, domainerrors.ErrInvalidJobState
	}

	now := time.Now()
	job.ResolvedAt = &now
	if success {
		job.Status = entity.JobStatusCompleted
	} else {
		job.Status = entity.JobStatusFailed
	}

	if err := s.jobRepo.UpdateJob(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to resolve job")
	}

	if success {
		if err := s.revenue.Record(ctx, entity.StreamPartnerships, job.Payout); err != nil {
			s.logger.Warn("Failed to record job payout revenue",
				slog.String("job_id", job.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return job, nil
}

// PurgeExpired removes available jobs past their deadline
func (s *jobService) PurgeExpired(ctx context.Context) (int, error) {
	purged, err := s.jobRepo.PurgeExpiredJobs(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired jobs")
	}

	return purged, nil
}

// pickTemplate draws a template proportionally to its weight.
func (s *jobService) pickTemplate(templates []entity.JobTemplate) entity.JobTemplate {
	totalWeight := 0
	for _, template := range templates {
		totalWeight += template.Weight
	}
	if totalWeight <= 0 {
		return templates[s.random.Intn(len(templates))]
	}

	roll := s.random.Intn(totalWeight)
	for _, template := range templates {
		roll -= template.Weight
		if roll < 0 {
			return template
		}
	}

	return templates[len(templates)-1]
}

func (s *jobService) pickDescription(template entity.JobTemplate) string {
	if len(template.Descriptions) == 0 {
		return string(template.Type)
	}

	return template.Descriptions[s.random.Intn(len(template.Descriptions))]
}

func (s *jobService) randomDuration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}

	return min + time.Duration(s.random.Float64()*float64(max-min))
}
