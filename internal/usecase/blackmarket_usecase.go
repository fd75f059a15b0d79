package usecase

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
)

// MarketPurchaseResult reports the outcome of a black market purchase.
// An intercepted purchase is a normal result, not an error.
type MarketPurchaseResult struct {
	Listing     *entity.BlackMarketListing `json:"listing"`
	Intercepted bool                       `json:"intercepted"`
	Price       float64                    `json:"price"`
}

// BlackMarketUsecase defines the interface for the black market
type BlackMarketUsecase interface {
	// GenerateListing creates a priced listing from a random catalog item
	GenerateListing(ctx context.Context) (*entity.BlackMarketListing, error)

	// ListListings retrieves all market listings in insertion order
	ListListings(ctx context.Context) ([]*entity.BlackMarketListing, error)

	// Purchase attempts to buy a listing; interception odds depend on the
	// listing's risk tier
	Purchase(ctx context.Context, id uuid.UUID, buyerID string) (*MarketPurchaseResult, error)

	// DriftPrices re-rolls a smaller volatility on every active listing
	DriftPrices(ctx context.Context) (int, error)

	// PurgeExpired removes active listings past their expiry
	PurgeExpired(ctx context.Context) (int, error)
}
