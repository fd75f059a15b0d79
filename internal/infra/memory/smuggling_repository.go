package memory

import (
	"context"
	"sync"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"
	"freeport/internal/util"

	"github.com/google/uuid"
)

// runHistoryCapacity bounds the recent-history buffer of resolved runs;
// the oldest run is evicted first.
const runHistoryCapacity = 50

// smugglingRepository implements repository.SmugglingRepository.
type smugglingRepository struct {
	mu      sync.RWMutex
	active  map[uuid.UUID]*entity.SmugglingRun
	order   []uuid.UUID
	history *util.Ring[*entity.SmugglingRun]
}

// NewSmugglingRepository is the constructor for smugglingRepository.
func NewSmugglingRepository() repository.SmugglingRepository {
	return &smugglingRepository{
		active:  make(map[uuid.UUID]*entity.SmugglingRun),
		history: util.NewRing[*entity.SmugglingRun](runHistoryCapacity),
	}
}

func cloneRun(run *entity.SmugglingRun) *entity.SmugglingRun {
	clone := *run
	if run.ResolvedAt != nil {
		resolved := *run.ResolvedAt
		clone.ResolvedAt = &resolved
	}

	return &clone
}

// CreateRun stores a newly launched run.
func (repo *smugglingRepository) CreateRun(_ context.Context, run *entity.SmugglingRun) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.active[run.ID] = cloneRun(run)
	repo.order = append(repo.order, run.ID)

	return nil
}

// FindRunByID retrieves an in-flight run by its unique ID.
func (repo *smugglingRepository) FindRunByID(_ context.Context, id uuid.UUID) (*entity.SmugglingRun, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	run, ok := repo.active[id]
	if !ok {
		return nil, repository.ErrRunNotFound
	}

	return cloneRun(run), nil
}

// ResolveRun moves a run from in-flight to the history buffer.
func (repo *smugglingRepository) ResolveRun(_ context.Context, run *entity.SmugglingRun) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.active[run.ID]; !ok {
		return repository.ErrRunNotFound
	}

	delete(repo.active, run.ID)
	kept := repo.order[:0]
	for _, id := range repo.order {
		if id != run.ID {
			kept = append(kept, id)
		}
	}
	repo.order = kept
	repo.history.Push(cloneRun(run))

	return nil
}

// ActiveRuns returns every in-flight run in insertion order.
func (repo *smugglingRepository) ActiveRuns(_ context.Context) ([]*entity.SmugglingRun, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.SmugglingRun, 0, len(repo.order))
	for _, id := range repo.order {
		out = append(out, cloneRun(repo.active[id]))
	}

	return out, nil
}

// RecentRuns returns the retained resolved runs, oldest first.
func (repo *smugglingRepository) RecentRuns(_ context.Context) ([]*entity.SmugglingRun, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	items := repo.history.Items()
	out := make([]*entity.SmugglingRun, 0, len(items))
	for _, run := range items {
		out = append(out, cloneRun(run))
	}

	return out, nil
}
