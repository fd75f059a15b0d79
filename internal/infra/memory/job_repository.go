package memory

import (
	"context"
	"sync"
	"time"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"

	"github.com/google/uuid"
)

// jobRepository implements repository.JobRepository.
type jobRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entity.Job
	order []uuid.UUID
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository() repository.JobRepository {
	return &jobRepository{
		byID: make(map[uuid.UUID]*entity.Job),
	}
}

func cloneJob(job *entity.Job) *entity.Job {
	clone := *job
	if job.ResolvedAt != nil {
		resolved := *job.ResolvedAt
		clone.ResolvedAt = &resolved
	}

	return &clone
}

// CreateJob stores a new job posting.
func (repo *jobRepository) CreateJob(_ context.Context, job *entity.Job) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.byID[job.ID] = cloneJob(job)
	repo.order = append(repo.order, job.ID)

	return nil
}

// FindJobByID retrieves a job by its unique ID.
func (repo *jobRepository) FindJobByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	job, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}

	return cloneJob(job), nil
}

// UpdateJob replaces a stored job.
func (repo *jobRepository) UpdateJob(_ context.Context, job *entity.Job) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[job.ID]; !ok {
		return repository.ErrJobNotFound
	}

	repo.byID[job.ID] = cloneJob(job)

	return nil
}

// AllJobs returns every job in insertion order.
func (repo *jobRepository) AllJobs(_ context.Context) ([]*entity.Job, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Job, 0, len(repo.order))
	for _, id := range repo.order {
		out = append(out, cloneJob(repo.byID[id]))
	}

	return out, nil
}

// PurgeExpiredJobs removes available jobs whose deadline passed.
func (repo *jobRepository) PurgeExpiredJobs(_ context.Context, now time.Time) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	purged := 0
	kept := repo.order[:0]
	for _, id := range repo.order {
		job := repo.byID[id]
		if job.Status == entity.JobStatusAvailable && now.After(job.Deadline) {
			delete(repo.byID, id)
			purged++

			continue
		}
		kept = append(kept, id)
	}
	repo.order = kept

	return purged, nil
}
