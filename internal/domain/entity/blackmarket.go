package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlackMarketStatus represents the lifecycle state of a black market listing.
type BlackMarketStatus string

const (
	BlackMarketStatusActive BlackMarketStatus = "active"
	BlackMarketStatusSold   BlackMarketStatus = "sold"
)

// legalityPriceMultiplier scales black market asking prices by customs risk.
var legalityPriceMultiplier = map[Legality]float64{
	LegalityLegal:      1.0,
	LegalityRestricted: 1.5,
	LegalityIllegal:    2.5,
}

// LegalityMultiplier returns the price multiplier for a legality class.
func LegalityMultiplier(legality Legality) float64 {
	if m, ok := legalityPriceMultiplier[legality]; ok {
		return m
	}

	return 1.0
}

// BlackMarketRisk maps cargo legality to the listing's interception tier.
func BlackMarketRisk(legality Legality) RiskLevel {
	switch legality {
	case LegalityIllegal:
		return RiskHigh
	case LegalityRestricted:
		return RiskMedium
	default:
		return RiskLow
	}
}

// BlackMarketListing is an item offered off the books. Prices drift by a
// bounded random factor while the listing is active; purchases may be
// intercepted, in which case the listing stays purchasable.
type BlackMarketListing struct {
	ID          uuid.UUID         `json:"id"`                  // The Global Unique Identifier (GUID) for the listing.
	Item        string            `json:"item"`                // Item name, usually from the cargo catalog.
	Legality    Legality          `json:"legality"`            // Customs classification of the item.
	Rarity      float64           `json:"rarity"`              // Rarity factor used in pricing.
	AskingPrice float64           `json:"asking_price"`        // Current asking price after drift.
	Risk        RiskLevel         `json:"risk"`                // Interception tier for purchases.
	Status      BlackMarketStatus `json:"status"`              // Current lifecycle status.
	SoldTo      string            `json:"sold_to,omitempty"`   // Buyer on a completed sale.
	ListedAt    time.Time         `json:"listed_at"`           // Timestamp of listing creation.
	ExpiresAt   time.Time         `json:"expires_at"`          // Fixed TTL after which the listing is purged.
	UpdatedAt   time.Time         `json:"updated_at"`          // Timestamp of the last price drift or sale.
}
