package repository

import (
	"context"
	"time"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrJobNotFound is returned when a job does not exist.
var ErrJobNotFound = errors.New("job not found")

// JobRepository stores job board postings.
type JobRepository interface {
	// CreateJob stores a new job posting.
	CreateJob(ctx context.Context, job *entity.Job) error

	// FindJobByID retrieves a job by its unique ID.
	FindJobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// UpdateJob replaces a stored job.
	UpdateJob(ctx context.Context, job *entity.Job) error

	// AllJobs returns every job in insertion order.
	AllJobs(ctx context.Context) ([]*entity.Job, error)

	// PurgeExpiredJobs removes available jobs whose deadline passed,
	// returning the number purged. Accepted jobs are never purged.
	PurgeExpiredJobs(ctx context.Context, now time.Time) (int, error)
}
