package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the job board state machine. Transitions are
// strictly available -> active -> {completed, failed}; anything else is an
// invalid-state error.
type JobStatus string

const (
	JobStatusAvailable JobStatus = "available"
	JobStatusActive    JobStatus = "active"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// JobType is one of the fixed job template families.
type JobType string

const (
	JobTypeCourier   JobType = "courier"
	JobTypeSmuggling JobType = "smuggling"
	JobTypeBounty    JobType = "bounty"
	JobTypeSalvage   JobType = "salvage"
)

// Job is a generated posting on the job board. Unaccepted jobs expire and
// are purged once their deadline passes.
type Job struct {
	ID          uuid.UUID     `json:"id"`                     // The Global Unique Identifier (GUID) for the job.
	Type        JobType       `json:"type"`                   // Template family the job was generated from.
	Description string        `json:"description"`            // Flavor description drawn from the template.
	Payout      float64       `json:"payout"`                 // Payout in credits on completion.
	Duration    time.Duration `json:"duration"`               // Expected time to complete once accepted.
	Status      JobStatus     `json:"status"`                 // State machine position.
	AcceptedBy  string        `json:"accepted_by,omitempty"`  // Pilot who accepted the job.
	Deadline    time.Time     `json:"deadline"`               // Acceptance TTL; unaccepted jobs past this are purged.
	CreatedAt   time.Time     `json:"created_at"`             // Timestamp of generation.
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`  // Timestamp of completion or failure.
}

// JobTemplate describes one weighted job family used by the generator.
type JobTemplate struct {
	Type         JobType       `json:"type"`
	Weight       int           `json:"weight"` // Relative draw weight.
	MinPayout    float64       `json:"min_payout"`
	MaxPayout    float64       `json:"max_payout"`
	MinDuration  time.Duration `json:"min_duration"`
	MaxDuration  time.Duration `json:"max_duration"`
	Descriptions []string      `json:"descriptions"` // Flavor texts sampled uniformly.
}
