package repository

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRunNotFound is returned when a smuggling run does not exist.
var ErrRunNotFound = errors.New("smuggling run not found")

// SmugglingRepository stores in-flight smuggling runs and a bounded
// recent-history buffer of resolved ones (oldest evicted first).
type SmugglingRepository interface {
	// CreateRun stores a newly launched run.
	CreateRun(ctx context.Context, run *entity.SmugglingRun) error

	// FindRunByID retrieves an in-flight run by its unique ID.
	FindRunByID(ctx context.Context, id uuid.UUID) (*entity.SmugglingRun, error)

	// ResolveRun moves a run from in-flight to the history buffer.
	ResolveRun(ctx context.Context, run *entity.SmugglingRun) error

	// ActiveRuns returns every in-flight run in insertion order.
	ActiveRuns(ctx context.Context) ([]*entity.SmugglingRun, error)

	// RecentRuns returns the retained resolved runs, oldest first.
	RecentRuns(ctx context.Context) ([]*entity.SmugglingRun, error)
}
