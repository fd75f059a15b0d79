package usecase

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
)

// JobUsecase defines the interface for the job board
type JobUsecase interface {
	// GenerateJobs creates count jobs from the weighted template catalog
	GenerateJobs(ctx context.Context, count int) ([]*entity.Job, error)

	// ListJobs retrieves all jobs in insertion order
	ListJobs(ctx context.Context) ([]*entity.Job, error)

	// AcceptJob moves an available job to active
	AcceptJob(ctx context.Context, id uuid.UUID, contractorID string) (*entity.Job, error)

	// CompleteJob resolves an active job as completed or failed.
	// Completion pays the job's payout into partnership revenue.
	CompleteJob(ctx context.Context, id uuid.UUID, success bool) (*entity.Job, error)

	// PurgeExpired removes available jobs past their deadline
	PurgeExpired(ctx context.Context) (int, error)
}
