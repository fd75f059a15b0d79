package entity

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus represents the lifecycle of a smuggling run. Exactly one
// terminal outcome is decided, once, when the run resolves.
type RunStatus string

const (
	RunStatusRunning     RunStatus = "running"
	RunStatusDelivered   RunStatus = "delivered"
	RunStatusIntercepted RunStatus = "intercepted"
)

// TierProfile maps a risk tier to its interception probability and reward
// multiplier.
type TierProfile struct {
	InterceptChance  float64
	RewardMultiplier float64
}

// tierProfiles is the fixed tier table.
var tierProfiles = map[RiskLevel]TierProfile{
	RiskLow:     {InterceptChance: 0.05, RewardMultiplier: 1.2},
	RiskMedium:  {InterceptChance: 0.10, RewardMultiplier: 1.5},
	RiskHigh:    {InterceptChance: 0.20, RewardMultiplier: 2.0},
	RiskExtreme: {InterceptChance: 0.35, RewardMultiplier: 3.0},
}

// ProfileForTier returns the interception/reward profile for a risk tier.
// Unknown tiers fall back to the low-risk profile.
func ProfileForTier(tier RiskLevel) TierProfile {
	if p, ok := tierProfiles[tier]; ok {
		return p
	}

	return tierProfiles[RiskLow]
}

// RunProfile is a catalog entry describing one contraband class the
// simulator draws runs from.
type RunProfile struct {
	Cargo    string    `json:"cargo"`
	Tier     RiskLevel `json:"tier"`
	MinValue float64   `json:"min_value"`
	MaxValue float64   `json:"max_value"`
}

// SmugglingRun is one simulated contraband run. Runs resolve
// asynchronously after a randomized delay and are retained in a bounded
// recent-history buffer once terminal.
type SmugglingRun struct {
	ID          uuid.UUID  `json:"id"`
	Cargo       string     `json:"cargo"`                 // Contraband description.
	Origin      string     `json:"origin"`                // Departure location name.
	Destination string     `json:"destination"`           // Arrival location name.
	Value       float64    `json:"value"`                 // Cargo value at launch.
	Tier        RiskLevel  `json:"tier"`                  // Risk tier drawn at launch.
	Status      RunStatus  `json:"status"`                // running until resolved.
	Payout      float64    `json:"payout"`                // Value times reward multiplier on delivery, 0 if intercepted.
	StartedAt   time.Time  `json:"started_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"` // Timestamp of the single terminal outcome.
}
