package service

import (
	"context"
)

// PlatformEvent is an event published for async consumers (analytics
// pipelines, dashboards). Publishing is best-effort; the core never blocks
// on it.
type PlatformEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	Kind      string  `json:"kind"`                 // e.g. "revenue.recorded", "run.resolved"
	Subject   string  `json:"subject"`              // Entity ID or stream name the event is about
	Amount    float64 `json:"amount,omitempty"`
	Detail    string  `json:"detail,omitempty"`
}

// EventPublisher defines the interface for publishing platform events to a
// message queue.
type EventPublisher interface {
	// PublishPlatformEvent publishes an event for async processing.
	PublishPlatformEvent(ctx context.Context, event *PlatformEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
