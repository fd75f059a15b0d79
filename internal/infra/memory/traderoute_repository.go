package memory

import (
	"context"
	"sync"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"

	"github.com/google/uuid"
)

// tradeRouteRepository implements repository.TradeRouteRepository.
type tradeRouteRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entity.TradeRoute
	order []uuid.UUID
}

// NewTradeRouteRepository is the constructor for tradeRouteRepository.
func NewTradeRouteRepository() repository.TradeRouteRepository {
	return &tradeRouteRepository{
		byID: make(map[uuid.UUID]*entity.TradeRoute),
	}
}

// CreateRoute stores a generated route.
func (repo *tradeRouteRepository) CreateRoute(_ context.Context, route *entity.TradeRoute) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *route
	repo.byID[route.ID] = &clone
	repo.order = append(repo.order, route.ID)

	return nil
}

// FindRouteByID retrieves a route by its unique ID.
func (repo *tradeRouteRepository) FindRouteByID(_ context.Context, id uuid.UUID) (*entity.TradeRoute, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	route, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrRouteNotFound
	}

	clone := *route

	return &clone, nil
}

// UpdateRoute replaces a stored route.
func (repo *tradeRouteRepository) UpdateRoute(_ context.Context, route *entity.TradeRoute) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[route.ID]; !ok {
		return repository.ErrRouteNotFound
	}

	clone := *route
	repo.byID[route.ID] = &clone

	return nil
}

// AllRoutes returns every route in insertion order.
func (repo *tradeRouteRepository) AllRoutes(_ context.Context) ([]*entity.TradeRoute, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.TradeRoute, 0, len(repo.order))
	for _, id := range repo.order {
		clone := *repo.byID[id]
		out = append(out, &clone)
	}

	return out, nil
}

// CountRoutes returns the number of stored routes.
func (repo *tradeRouteRepository) CountRoutes(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.order), nil
}
