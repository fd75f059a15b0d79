package usecase

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampaignInput carries the fields for a new marketing campaign.
type CreateCampaignInput struct {
	Name    string
	Channel string
	Budget  float64
}

// TrackEventInput records one funnel event against a campaign.
type TrackEventInput struct {
	CampaignID uuid.UUID
	EventType  entity.FunnelEventType
	Cost       float64
}

// ChannelStats is the per-channel acquisition rollup.
type ChannelStats struct {
	Campaigns   int     `json:"campaigns"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Cost        float64 `json:"cost"`
	CTR         float64 `json:"ctr"`
	CVR         float64 `json:"cvr"`
}

// AcquisitionAnalytics summarizes funnel performance across channels.
type AcquisitionAnalytics struct {
	TotalCampaigns int                     `json:"total_campaigns"`
	TotalSpend     float64                 `json:"total_spend"`
	ByChannel      map[string]ChannelStats `json:"by_channel"`
	BestChannel    string                  `json:"best_channel,omitempty"`
}

// AcquisitionUsecase defines the interface for marketing funnel use cases
type AcquisitionUsecase interface {
	// CreateCampaign registers a campaign with zeroed metrics
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (*entity.Campaign, error)

	// TrackEvent records a funnel event. Unknown campaigns are a silent no-op.
	TrackEvent(ctx context.Context, input TrackEventInput) error

	// ListCampaigns retrieves all campaigns in insertion order
	ListCampaigns(ctx context.Context) ([]*entity.Campaign, error)

	// Analytics computes the per-channel funnel rollup
	Analytics(ctx context.Context) (*AcquisitionAnalytics, error)
}
