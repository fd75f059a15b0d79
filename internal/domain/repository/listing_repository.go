// Package repository defines the persistence-agnostic store interfaces the
// use cases depend on, plus their sentinel errors. Every entity is owned by
// exactly one store; cross-store references are by identifier only.
package repository

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrListingNotFound is returned when a listing does not exist.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository stores marketplace listings. Implementations must
// preserve insertion order in All so analytics tie-breaking stays stable.
type ListingRepository interface {
	// CreateListing stores a new listing.
	CreateListing(ctx context.Context, listing *entity.Listing) error

	// FindListingByID retrieves a listing by its unique ID.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// UpdateListing replaces a stored listing.
	UpdateListing(ctx context.Context, listing *entity.Listing) error

	// AllListings returns every listing in insertion order.
	AllListings(ctx context.Context) ([]*entity.Listing, error)
}

// ErrTransactionNotFound is returned when a transaction does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository stores settled marketplace transactions.
type TransactionRepository interface {
	// CreateTransaction appends a settled transaction.
	CreateTransaction(ctx context.Context, tx *entity.Transaction) error

	// AllTransactions returns every transaction in insertion order.
	AllTransactions(ctx context.Context) ([]*entity.Transaction, error)
}
