package entity

import (
	"time"

	"github.com/google/uuid"
)

// FunnelEventType is a marketing funnel event recorded against a campaign.
type FunnelEventType string

const (
	FunnelEventImpression FunnelEventType = "impression"
	FunnelEventClick      FunnelEventType = "click"
	FunnelEventConversion FunnelEventType = "conversion"
)

// ValidFunnelEvent reports whether the event type is in the fixed set.
func ValidFunnelEvent(eventType FunnelEventType) bool {
	switch eventType {
	case FunnelEventImpression, FunnelEventClick, FunnelEventConversion:
		return true
	default:
		return false
	}
}

// CampaignMetrics tracks funnel counters for a campaign. All fields are
// monotonically increasing.
type CampaignMetrics struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Cost        float64 `json:"cost"` // Accumulated conversion cost.
}

// Campaign represents a marketing campaign on one acquisition channel.
// Campaigns are mutated by tracked funnel events and never removed.
type Campaign struct {
	ID        uuid.UUID       `json:"id"`         // The Global Unique Identifier (GUID) for the campaign.
	Name      string          `json:"name"`       // Display name.
	Channel   string          `json:"channel"`    // Acquisition channel, e.g. "social", "search", "referral".
	Budget    float64         `json:"budget"`     // Allocated budget.
	Status    string          `json:"status"`     // Free-form status label, e.g. "active", "paused".
	Metrics   CampaignMetrics `json:"metrics"`    // Funnel counters, zeroed at creation.
	CreatedAt time.Time       `json:"created_at"` // Timestamp of when the campaign was created.
	UpdatedAt time.Time       `json:"updated_at"` // Timestamp of the last tracked event.
}
