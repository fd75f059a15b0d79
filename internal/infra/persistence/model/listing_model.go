// Package model holds the GORM-specific structs mapped to archival tables.
// The platform operates on the in-memory stores; these tables only receive
// copies of finalized records for offline analysis.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel is the GORM-specific struct for the 'marketplace_listings' table.
type ListingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID    string    `gorm:"type:text;not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:text;not null;index"`
	Price       float64   `gorm:"type:decimal(12,2);not null"`
	Status      string    `gorm:"type:text;not null;default:'active'"`
	Views       int       `gorm:"not null;default:0"`
	Purchases   int       `gorm:"not null;default:0"`
	Revenue     float64   `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "marketplace_listings"
}
