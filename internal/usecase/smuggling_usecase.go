package usecase

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
)

// SmugglingUsecase defines the interface for smuggling run simulation
type SmugglingUsecase interface {
	// LaunchRun starts a run from a random profile between two random
	// distinct locations
	LaunchRun(ctx context.Context) (*entity.SmugglingRun, error)

	// ResolveRun settles a running run with a single interception draw.
	// A delivered run pays value times the tier's reward multiplier into
	// merchandise revenue.
	ResolveRun(ctx context.Context, id uuid.UUID) (*entity.SmugglingRun, error)

	// ActiveRuns retrieves runs not yet resolved
	ActiveRuns(ctx context.Context) ([]*entity.SmugglingRun, error)

	// RecentRuns retrieves the capped resolution history, oldest first
	RecentRuns(ctx context.Context) ([]*entity.SmugglingRun, error)
}
