package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"
)

// revenueRepository implements repository.RevenueRepository. The history
// series may be seeded with a baseline so forecasts are available before
// the first period closes.
type revenueRepository struct {
	mu          sync.RWMutex
	totals      map[entity.RevenueStream]float64
	periodTotal float64
	history     []float64
}

// NewRevenueRepository is the constructor for revenueRepository.
func NewRevenueRepository(baseline []float64) repository.RevenueRepository {
	return &revenueRepository{
		totals:  make(map[entity.RevenueStream]float64),
		history: slices.Clone(baseline),
	}
}

// AddRevenue accumulates an amount on a stream and the period total.
func (repo *revenueRepository) AddRevenue(_ context.Context, stream entity.RevenueStream, amount float64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.totals[stream] += amount
	repo.periodTotal += amount

	return nil
}

// StreamTotals returns the running total per stream.
func (repo *revenueRepository) StreamTotals(_ context.Context) (map[entity.RevenueStream]float64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return maps.Clone(repo.totals), nil
}

// PeriodTotal returns the revenue accumulated in the open period.
func (repo *revenueRepository) PeriodTotal(_ context.Context) (float64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.periodTotal, nil
}

// History returns the retained per-period revenue series, oldest first.
func (repo *revenueRepository) History(_ context.Context) ([]float64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return slices.Clone(repo.history), nil
}

// ClosePeriod appends the open period's total to the history and resets it.
func (repo *revenueRepository) ClosePeriod(_ context.Context) (float64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	closed := repo.periodTotal
	repo.history = append(repo.history, closed)
	repo.periodTotal = 0

	return closed, nil
}
