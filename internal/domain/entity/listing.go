package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingCategory is a marketplace listing category with a fixed royalty rate.
type ListingCategory string

const (
	CategoryShipParts  ListingCategory = "ship_parts"
	CategoryNavCharts  ListingCategory = "nav_charts"
	CategoryProvisions ListingCategory = "provisions"
	CategoryArtifacts  ListingCategory = "artifacts"
	CategoryServices   ListingCategory = "services"
)

// categoryRoyalty maps each category to the platform royalty rate applied
// to every purchase in it.
var categoryRoyalty = map[ListingCategory]float64{
	CategoryShipParts:  0.10,
	CategoryNavCharts:  0.15,
	CategoryProvisions: 0.08,
	CategoryArtifacts:  0.20,
	CategoryServices:   0.12,
}

// Categories returns the fixed category set in a stable order.
func Categories() []ListingCategory {
	return []ListingCategory{
		CategoryShipParts,
		CategoryNavCharts,
		CategoryProvisions,
		CategoryArtifacts,
		CategoryServices,
	}
}

// RoyaltyRate returns the royalty rate for a category and whether the
// category exists.
func RoyaltyRate(category ListingCategory) (float64, bool) {
	rate, ok := categoryRoyalty[category]

	return rate, ok
}

// ListingStatus represents the lifecycle state of a listing.
type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusSold    ListingStatus = "sold"
	ListingStatusExpired ListingStatus = "expired"
)

// Listing represents a marketplace listing. Listings have infinite
// inventory: purchases increment counters without retiring the listing.
type Listing struct {
	ID          uuid.UUID       `json:"id"`          // The Global Unique Identifier (GUID) for the listing.
	SellerID    string          `json:"seller_id"`   // The ID of the seller.
	Title       string          `json:"title"`       // Display title.
	Description string          `json:"description"` // Free-form description.
	Category    ListingCategory `json:"category"`    // Category; must exist in the fixed royalty table.
	Price       float64         `json:"price"`       // Unit price in platform credits.
	Status      ListingStatus   `json:"status"`      // Current lifecycle status.
	Views       int             `json:"views"`       // Lookup counter, incremented per retrieval.
	Purchases   int             `json:"purchases"`   // Settled purchase counter.
	Revenue     float64         `json:"revenue"`     // Accumulated gross revenue.
	CreatedAt   time.Time       `json:"created_at"`  // Timestamp of when the listing was created.
	UpdatedAt   time.Time       `json:"updated_at"`  // Timestamp of the last mutation.
}
