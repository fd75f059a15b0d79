package memory

import (
	"context"
	"sync"
	"time"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"

	"github.com/google/uuid"
)

// blackMarketRepository implements repository.BlackMarketRepository.
type blackMarketRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entity.BlackMarketListing
	order []uuid.UUID
}

// NewBlackMarketRepository is the constructor for blackMarketRepository.
func NewBlackMarketRepository() repository.BlackMarketRepository {
	return &blackMarketRepository{
		byID: make(map[uuid.UUID]*entity.BlackMarketListing),
	}
}

// CreateMarketListing stores a new listing.
func (repo *blackMarketRepository) CreateMarketListing(_ context.Context, listing *entity.BlackMarketListing) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *listing
	repo.byID[listing.ID] = &clone
	repo.order = append(repo.order, listing.ID)

	return nil
}

// FindMarketListingByID retrieves a listing by its unique ID.
func (repo *blackMarketRepository) FindMarketListingByID(_ context.Context, id uuid.UUID) (*entity.BlackMarketListing, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	listing, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrMarketListingNotFound
	}

	clone := *listing

	return &clone, nil
}

// UpdateMarketListing replaces a stored listing.
func (repo *blackMarketRepository) UpdateMarketListing(_ context.Context, listing *entity.BlackMarketListing) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[listing.ID]; !ok {
		return repository.ErrMarketListingNotFound
	}

	clone := *listing
	repo.byID[listing.ID] = &clone

	return nil
}

// AllMarketListings returns every listing in insertion order.
func (repo *blackMarketRepository) AllMarketListings(_ context.Context) ([]*entity.BlackMarketListing, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.BlackMarketListing, 0, len(repo.order))
	for _, id := range repo.order {
		clone := *repo.byID[id]
		out = append(out, &clone)
	}

	return out, nil
}

// PurgeExpiredMarketListings removes active listings past their TTL.
func (repo *blackMarketRepository) PurgeExpiredMarketListings(_ context.Context, now time.Time) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	purged := 0
	kept := repo.order[:0]
	for _, id := range repo.order {
		listing := repo.byID[id]
		if listing.Status == entity.BlackMarketStatusActive && now.After(listing.ExpiresAt) {
			delete(repo.byID, id)
			purged++

			continue
		}
		kept = append(kept, id)
	}
	repo.order = kept

	return purged, nil
}
