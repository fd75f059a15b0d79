package impl

import (
	"context"
	"log/slog"
	"time"

	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/domain/repository"
	"freeport/internal/domain/service"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type acquisitionService struct {
	campaignRepo repository.CampaignRepository
	sink         service.PersistenceSink
	logger       *slog.Logger
}

// AcquisitionServiceParams holds dependencies for AcquisitionService, injected by Fx.
type AcquisitionServiceParams struct {
	fx.In

	CampaignRepo repository.CampaignRepository
	Sink         service.PersistenceSink
	Logger       *slog.Logger
}

// NewAcquisitionService creates a new marketing funnel service instance
func NewAcquisitionService(params AcquisitionServiceParams) usecase.AcquisitionUsecase {
	return &acquisitionService{
		campaignRepo: params.CampaignRepo,
		sink:         params.Sink,
		logger:       params.Logger,
	}
}

// CreateCampaign registers a campaign with zeroed metrics
func (s *acquisitionService) CreateCampaign(ctx context.Context, input usecase.CreateCampaignInput) (*entity.Campaign, error) {
	now := time.Now()
	campaign := &entity.Campaign{
		ID:        uuid.New(),
		Name:      input.Name,
		Channel:   input.Channel,
		Budget:    input.Budget,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "failed to create campaign")
	}

	s.archiveCampaign(ctx, campaign)

	return campaign, nil
}

// TrackEvent records a funnel event. Events against unknown campaigns are
// dropped silently so that stale trackers cannot fail a caller.
func (s *acquisitionService) TrackEvent(ctx context.Context, input usecase.TrackEventInput) error {
	if !entity.ValidFunnelEvent(input.EventType) {
		return domainerrors.ErrInvalidEventType
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, input.CampaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find campaign")
	}

	switch input.EventType {
	case entity.FunnelEventImpression:
		campaign.Metrics.Impressions++
	case entity.FunnelEventClick:
		campaign.Metrics.Clicks++
	case entity.FunnelEventConversion:
		campaign.Metrics.Conversions++
		campaign.Metrics.Cost += input.Cost
	}
	campaign.UpdatedAt = time.Now()

	if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
		return errors.Wrap(err, "failed to update campaign metrics")
	}

	s.archiveCampaign(ctx, campaign)

	return nil
}

// ListCampaigns retrieves all campaigns in insertion order
func (s *acquisitionService) ListCampaigns(ctx context.Context) ([]*entity.Campaign, error) {
	campaigns, err := s.campaignRepo.AllCampaigns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return campaigns, nil
}

// Analytics computes the per-channel funnel rollup
func (s *acquisitionService) Analytics(ctx context.Context) (*usecase.AcquisitionAnalytics, error) {
	campaigns, err := s.campaignRepo.AllCampaigns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	analytics := &usecase.AcquisitionAnalytics{
		TotalCampaigns: len(campaigns),
		ByChannel:      make(map[string]usecase.ChannelStats),
	}

	for _, campaign := range campaigns {
		stats := analytics.ByChannel[campaign.Channel]
		stats.Campaigns++
		stats.Impressions += campaign.Metrics.Impressions
		stats.Clicks += campaign.Metrics.Clicks
		stats.Conversions += campaign.Metrics.Conversions
		stats.Cost += campaign.Metrics.Cost
		analytics.ByChannel[campaign.Channel] = stats

		analytics.TotalSpend += campaign.Metrics.Cost
	}

	bestConversions := -1
	for channel, stats := range analytics.ByChannel {
		if stats.Impressions > 0 {
			stats.CTR = float64(stats.Clicks) / float64(stats.Impressions)
		}
		if stats.Clicks > 0 {
			stats.CVR = float64(stats.Conversions) / float64(stats.Clicks)
		}
		analytics.ByChannel[channel] = stats

		if stats.Conversions > bestConversions ||
			(stats.Conversions == bestConversions && channel < analytics.BestChannel) {
			bestConversions = stats.Conversions
			analytics.BestChannel = channel
		}
	}

	return analytics, nil
}

func (s *acquisitionService) archiveCampaign(ctx context.Context, campaign *entity.Campaign) {
	if err := s.sink.SaveCampaign(ctx, campaign); err != nil {
		s.logger.Warn("Failed to archive campaign",
			slog.String("campaign_id", campaign.ID.String()),
			slog.Any("error", err),
		)
	}
}
