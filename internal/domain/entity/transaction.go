package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the settlement state of a marketplace
// transaction.
type TransactionStatus string

const (
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusFailed     TransactionStatus = "failed"
)

// Transaction is an immutable record of one marketplace purchase. Once
// settled it is never mutated.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`         // The Global Unique Identifier (GUID) for the transaction.
	ListingID uuid.UUID         `json:"listing_id"` // The listing purchased.
	BuyerID   string            `json:"buyer_id"`   // The ID of the buyer.
	SellerID  string            `json:"seller_id"`  // The ID of the seller, copied from the listing.
	Category  ListingCategory   `json:"category"`   // Category snapshot taken from the listing.
	Amount    float64           `json:"amount"`     // Gross amount, equal to the listing price.
	Method    string            `json:"method"`     // Payment method label.
	Status    TransactionStatus `json:"status"`     // Settlement status.
	Royalty   float64           `json:"royalty"`    // Platform royalty, amount times the category rate.
	CreatedAt time.Time         `json:"created_at"` // Timestamp of settlement.
}
