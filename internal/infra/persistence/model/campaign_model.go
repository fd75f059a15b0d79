package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel is the GORM-specific struct for the 'marketing_campaigns' table.
type CampaignModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:text;not null"`
	Channel     string    `gorm:"type:text;not null;index"`
	Budget      float64   `gorm:"type:decimal(12,2);not null"`
	Status      string    `gorm:"type:text;not null;default:'active'"`
	Impressions int       `gorm:"not null;default:0"`
	Clicks      int       `gorm:"not null;default:0"`
	Conversions int       `gorm:"not null;default:0"`
	Cost        float64   `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "marketing_campaigns"
}
