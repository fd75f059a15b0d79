// Package memory contains the in-memory implementation of the persistence
// layer. All platform state is process-local and unreplicated; maps are
// guarded by per-store RWMutexes and iteration order is insertion order so
// analytics stay stable between calls.
package memory

import (
	"context"
	"sync"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"

	"github.com/google/uuid"
)

// listingRepository implements repository.ListingRepository.
type listingRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entity.Listing
	order []uuid.UUID
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository() repository.ListingRepository {
	return &listingRepository{
		byID: make(map[uuid.UUID]*entity.Listing),
	}
}

// CreateListing stores a new listing.
func (repo *listingRepository) CreateListing(_ context.Context, listing *entity.Listing) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *listing
	repo.byID[listing.ID] = &clone
	repo.order = append(repo.order, listing.ID)

	return nil
}

// FindListingByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindListingByID(_ context.Context, id uuid.UUID) (*entity.Listing, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	listing, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrListingNotFound
	}

	clone := *listing

	return &clone, nil
}

// UpdateListing replaces a stored listing.
func (repo *listingRepository) UpdateListing(_ context.Context, listing *entity.Listing) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[listing.ID]; !ok {
		return repository.ErrListingNotFound
	}

	clone := *listing
	repo.byID[listing.ID] = &clone

	return nil
}

// AllListings returns every listing in insertion order.
func (repo *listingRepository) AllListings(_ context.Context) ([]*entity.Listing, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Listing, 0, len(repo.order))
	for _, id := range repo.order {
		clone := *repo.byID[id]
		out = append(out, &clone)
	}

	return out, nil
}

// transactionRepository implements repository.TransactionRepository.
type transactionRepository struct {
	mu  sync.RWMutex
	txs []*entity.Transaction
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository() repository.TransactionRepository {
	return &transactionRepository{}
}

// CreateTransaction appends a settled transaction.
func (repo *transactionRepository) CreateTransaction(_ context.Context, tx *entity.Transaction) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *tx
	repo.txs = append(repo.txs, &clone)

	return nil
}

// AllTransactions returns every transaction in insertion order.
func (repo *transactionRepository) AllTransactions(_ context.Context) ([]*entity.Transaction, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Transaction, 0, len(repo.txs))
	for _, tx := range repo.txs {
		clone := *tx
		out = append(out, &clone)
	}

	return out, nil
}
