package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel is the GORM-specific struct for the 'marketplace_transactions' table.
type TransactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID   string    `gorm:"type:text;not null;index"`
	SellerID  string    `gorm:"type:text;not null;index"`
	Category  string    `gorm:"type:text;not null"`
	Amount    float64   `gorm:"type:decimal(12,2);not null"`
	Method    string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:text;not null"`
	Royalty   float64   `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "marketplace_transactions"
}
