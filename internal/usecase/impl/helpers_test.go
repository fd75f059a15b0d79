package impl

import (
	"context"
	"log/slog"
	"sync"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/service"
)

// stubRecorder captures revenue records per stream.
type stubRecorder struct {
	mu      sync.Mutex
	records map[entity.RevenueStream]float64
}

func newStubRecorder() *stubRecorder {
	return &stubRecorder{records: make(map[entity.RevenueStream]float64)}
}

func (r *stubRecorder) Record(_ context.Context, stream entity.RevenueStream, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[stream] += amount

	return nil
}

func (r *stubRecorder) total(stream entity.RevenueStream) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.records[stream]
}

// stubSink swallows archival writes.
type stubSink struct{}

func (stubSink) SaveListing(context.Context, *entity.Listing) error           { return nil }
func (stubSink) SaveTransaction(context.Context, *entity.Transaction) error   { return nil }
func (stubSink) SaveSubscription(context.Context, *entity.Subscription) error { return nil }
func (stubSink) SaveCampaign(context.Context, *entity.Campaign) error         { return nil }

// stubPublisher collects published events.
type stubPublisher struct {
	mu     sync.Mutex
	events []*service.PlatformEvent
}

func (p *stubPublisher) PublishPlatformEvent(_ context.Context, event *service.PlatformEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *stubPublisher) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
