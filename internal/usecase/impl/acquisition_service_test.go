package impl

import (
	"context"
	"testing"

	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/infra/memory"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAcquisitionFixture() usecase.AcquisitionUsecase {
	return NewAcquisitionService(AcquisitionServiceParams{
		CampaignRepo: memory.NewCampaignRepository(),
		Sink:         stubSink{},
		Logger:       testLogger(),
	})
}

func TestAcquisitionService_CreateCampaign_ZeroedMetrics(t *testing.T) {
	svc := newAcquisitionFixture()

	campaign, err := svc.CreateCampaign(context.Background(), usecase.CreateCampaignInput{
		Name: "Dock launch", Channel: "social", Budget: 500,
	})
	require.NoError(t, err)

	assert.Equal(t, "active", campaign.Status)
	assert.Zero(t, campaign.Metrics.Impressions)
	assert.Zero(t, campaign.Metrics.Clicks)
	assert.Zero(t, campaign.Metrics.Conversions)
	assert.Zero(t, campaign.Metrics.Cost)
}

func TestAcquisitionService_TrackEvent_InvalidEventType(t *testing.T) {
	svc := newAcquisitionFixture()

	err := svc.TrackEvent(context.Background(), usecase.TrackEventInput{
		CampaignID: uuid.New(), EventType: "install",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEventType)
}

func TestAcquisitionService_TrackEvent_UnknownCampaignIsSilentNoop(t *testing.T) {
	svc := newAcquisitionFixture()

	err := svc.TrackEvent(context.Background(), usecase.TrackEventInput{
		CampaignID: uuid.New(), EventType: entity.FunnelEventClick,
	})
	assert.NoError(t, err)
}

func TestAcquisitionService_TrackEvent_ConversionAddsCost(t *testing.T) {
	svc := newAcquisitionFixture()
	ctx := context.Background()

	campaign, err := svc.CreateCampaign(ctx, usecase.CreateCampaignInput{
		Name: "Dock launch", Channel: "social", Budget: 500,
	})
	require.NoError(t, err)

	require.NoError(t, svc.TrackEvent(ctx, usecase.TrackEventInput{
		CampaignID: campaign.ID, EventType: entity.FunnelEventImpression,
	}))
	require.NoError(t, svc.TrackEvent(ctx, usecase.TrackEventInput{
		CampaignID: campaign.ID, EventType: entity.FunnelEventClick,
	}))
	require.NoError(t, svc.TrackEvent(ctx, usecase.TrackEventInput{
		CampaignID: campaign.ID, EventType: entity.FunnelEventConversion, Cost: 12.5,
	}))

	campaigns, err := svc.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)

	metrics := campaigns[0].Metrics
	assert.Equal(t, 1, metrics.Impressions)
	assert.Equal(t, 1, metrics.Clicks)
	assert.Equal(t, 1, metrics.Conversions)
	assert.InDelta(t, 12.5, metrics.Cost, 1e-9)
}

func TestAcquisitionService_Analytics_BestChannel(t *testing.T) {
	svc := newAcquisitionFixture()
	ctx := context.Background()

	social, err := svc.CreateCampaign(ctx, usecase.CreateCampaignInput{Name: "s", Channel: "social", Budget: 100})
	require.NoError(t, err)
	search, err := svc.CreateCampaign(ctx, usecase.CreateCampaignInput{Name: "q", Channel: "search", Budget: 100})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.TrackEvent(ctx, usecase.TrackEventInput{
			CampaignID: search.ID, EventType: entity.FunnelEventConversion, Cost: 5,
		}))
	}
	require.NoError(t, svc.TrackEvent(ctx, usecase.TrackEventInput{
		CampaignID: social.ID, EventType: entity.FunnelEventConversion, Cost: 5,
	}))

	analytics, err := svc.Analytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, analytics.TotalCampaigns)
	assert.Equal(t, "search", analytics.BestChannel)
	assert.InDelta(t, 20.0, analytics.TotalSpend, 1e-9)
	assert.Equal(t, 3, analytics.ByChannel["search"].Conversions)
}

func TestAcquisitionService_Analytics_NoCampaignsNoBestChannel(t *testing.T) {
	svc := newAcquisitionFixture()

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Empty(t, analytics.BestChannel)
	assert.Zero(t, analytics.TotalCampaigns)
}
