package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription represents one recurring-plan membership record. Each
// subscribe call creates a new record; no per-user uniqueness is enforced.
// Cancellation flips the status, records are never removed.
type Subscription struct {
	ID          uuid.UUID          `json:"id"`                     // The Global Unique Identifier (GUID) for the subscription.
	UserID      string             `json:"user_id"`                // The ID of the subscribing user.
	PlanID      string             `json:"plan_id"`                // The plan subscribed to; must exist in the fixed plan table.
	Method      string             `json:"method"`                 // Payment method label used at subscription time.
	Status      SubscriptionStatus `json:"status"`                 // Current lifecycle status.
	Price       float64            `json:"price"`                  // Revenue snapshot taken from the plan at creation.
	Features    []string           `json:"features"`               // Feature set, fixed at creation from the plan.
	StartDate   time.Time          `json:"start_date"`             // Timestamp of when the subscription started.
	NextBilling *time.Time         `json:"next_billing,omitempty"` // Next billing date; nil for lifetime plans.
	CancelledAt *time.Time         `json:"cancelled_at,omitempty"` // Timestamp of cancellation, if cancelled.
}
