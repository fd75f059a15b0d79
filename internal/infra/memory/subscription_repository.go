package memory

import (
	"context"
	"slices"
	"sync"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"

	"github.com/google/uuid"
)

// subscriptionRepository implements repository.SubscriptionRepository.
type subscriptionRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entity.Subscription
	order []uuid.UUID
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository() repository.SubscriptionRepository {
	return &subscriptionRepository{
		byID: make(map[uuid.UUID]*entity.Subscription),
	}
}

func cloneSubscription(subscription *entity.Subscription) *entity.Subscription {
	clone := *subscription
	clone.Features = slices.Clone(subscription.Features)
	if subscription.NextBilling != nil {
		next := *subscription.NextBilling
		clone.NextBilling = &next
	}
	if subscription.CancelledAt != nil {
		cancelled := *subscription.CancelledAt
		clone.CancelledAt = &cancelled
	}

	return &clone
}

// CreateSubscription stores a new subscription record.
func (repo *subscriptionRepository) CreateSubscription(_ context.Context, subscription *entity.Subscription) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.byID[subscription.ID] = cloneSubscription(subscription)
	repo.order = append(repo.order, subscription.ID)

	return nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(_ context.Context, id uuid.UUID) (*entity.Subscription, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	subscription, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrSubscriptionNotFound
	}

	return cloneSubscription(subscription), nil
}

// UpdateSubscription replaces a stored subscription.
func (repo *subscriptionRepository) UpdateSubscription(_ context.Context, subscription *entity.Subscription) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[subscription.ID]; !ok {
		return repository.ErrSubscriptionNotFound
	}

	repo.byID[subscription.ID] = cloneSubscription(subscription)

	return nil
}

// AllSubscriptions returns every subscription in insertion order.
func (repo *subscriptionRepository) AllSubscriptions(_ context.Context) ([]*entity.Subscription, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Subscription, 0, len(repo.order))
	for _, id := range repo.order {
		out = append(out, cloneSubscription(repo.byID[id]))
	}

	return out, nil
}
