package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
type SubscriptionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      string     `gorm:"type:text;not null;index"`
	PlanID      string     `gorm:"type:text;not null;index"`
	Method      string     `gorm:"type:text;not null"`
	Status      string     `gorm:"type:text;not null;default:'active'"`
	Price       float64    `gorm:"type:decimal(12,2);not null"`
	StartDate   time.Time  `gorm:"not null"`
	NextBilling *time.Time `gorm:"index"`
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
