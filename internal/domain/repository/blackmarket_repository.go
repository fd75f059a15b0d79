package repository

import (
	"context"
	"time"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMarketListingNotFound is returned when a black market listing does not exist.
var ErrMarketListingNotFound = errors.New("black market listing not found")

// BlackMarketRepository stores off-the-books listings.
type BlackMarketRepository interface {
	// CreateMarketListing stores a new listing.
	CreateMarketListing(ctx context.Context, listing *entity.BlackMarketListing) error

	// FindMarketListingByID retrieves a listing by its unique ID.
	FindMarketListingByID(ctx context.Context, id uuid.UUID) (*entity.BlackMarketListing, error)

	// UpdateMarketListing replaces a stored listing.
	UpdateMarketListing(ctx context.Context, listing *entity.BlackMarketListing) error

	// AllMarketListings returns every listing in insertion order.
	AllMarketListings(ctx context.Context) ([]*entity.BlackMarketListing, error)

	// PurgeExpiredMarketListings removes active listings past their TTL,
	// returning the number purged.
	PurgeExpiredMarketListings(ctx context.Context, now time.Time) (int, error)
}
