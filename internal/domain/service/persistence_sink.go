package service

import (
	"context"

	"freeport/internal/domain/entity"
)

// PersistenceSink is an optional write-through collaborator: entity
// mutations are upserted for durability, but the in-memory stores remain
// the source of truth and never depend on the sink functioning. Sink
// failures are logged and swallowed by callers.
type PersistenceSink interface {
	// SaveListing upserts a marketplace listing.
	SaveListing(ctx context.Context, listing *entity.Listing) error

	// SaveTransaction upserts a marketplace transaction.
	SaveTransaction(ctx context.Context, tx *entity.Transaction) error

	// SaveSubscription upserts a subscription record.
	SaveSubscription(ctx context.Context, subscription *entity.Subscription) error

	// SaveCampaign upserts a campaign record.
	SaveCampaign(ctx context.Context, campaign *entity.Campaign) error
}
