package usecase

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateListingInput carries the seller-provided fields for a new listing.
type CreateListingInput struct {
	SellerID    string
	Title       string
	Description string
	Category    entity.ListingCategory
	Price       float64
}

// PurchaseInput identifies the buyer and payment method for a purchase.
type PurchaseInput struct {
	ListingID uuid.UUID
	BuyerID   string
	Method    string
}

// PurchaseResult bundles the settled transaction with the updated listing.
type PurchaseResult struct {
	Transaction *entity.Transaction
	Listing     *entity.Listing
}

// CategoryStats is the per-category analytics rollup.
type CategoryStats struct {
	Listings     int     `json:"listings"`
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
	AvgPrice     float64 `json:"avg_price"`
}

// MarketplaceAnalytics summarizes marketplace activity.
type MarketplaceAnalytics struct {
	TotalListings     int                                      `json:"total_listings"`
	TotalTransactions int                                      `json:"total_transactions"`
	TotalRevenue      float64                                  `json:"total_revenue"`
	TotalRoyalties    float64                                  `json:"total_royalties"`
	ByCategory        map[entity.ListingCategory]CategoryStats `json:"by_category"`
	TopListings       []*entity.Listing                        `json:"top_listings"`
}

// ListingUsecase defines the interface for marketplace listing use cases
type ListingUsecase interface {
	// CreateListing registers a new listing in the given category
	CreateListing(ctx context.Context, input CreateListingInput) (*entity.Listing, error)

	// GetListing retrieves a listing and counts the lookup as a view
	GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// ListListings retrieves all listings in insertion order
	ListListings(ctx context.Context) ([]*entity.Listing, error)

	// Purchase settles a purchase against a listing and records the transaction
	Purchase(ctx context.Context, input PurchaseInput) (*PurchaseResult, error)

	// Analytics computes the marketplace rollup
	Analytics(ctx context.Context) (*MarketplaceAnalytics, error)
}
