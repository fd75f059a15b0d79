package impl

import (
	"context"
	"testing"
	"time"

	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/infra/memory"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionFixture() (usecase.SubscriptionUsecase, *stubRecorder) {
	recorder := newStubRecorder()
	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: memory.NewSubscriptionRepository(),
		Revenue:          recorder,
		Sink:             stubSink{},
		Publisher:        &stubPublisher{},
		Logger:           testLogger(),
	})

	return svc, recorder
}

func TestSubscriptionService_Subscribe_InvalidPlan(t *testing.T) {
	svc, _ := newSubscriptionFixture()

	_, err := svc.Subscribe(context.Background(), usecase.SubscribeInput{
		UserID: "crew-1", PlanID: "platinum", Method: "transfer",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlan)
}

func TestSubscriptionService_Subscribe_PremiumPlan(t *testing.T) {
	svc, recorder := newSubscriptionFixture()
	ctx := context.Background()

	subscription, err := svc.Subscribe(ctx, usecase.SubscribeInput{
		UserID: "crew-1", PlanID: "premium", Method: "transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionStatusActive, subscription.Status)
	assert.Equal(t, 9.99, subscription.Price)
	assert.Contains(t, subscription.Features, "black_market")

	require.NotNil(t, subscription.NextBilling)
	expected := subscription.StartDate.AddDate(0, 0, 30)
	assert.WithinDuration(t, expected, *subscription.NextBilling, time.Second)

	assert.InDelta(t, 9.99, recorder.total(entity.StreamSubscriptions), 1e-9)
}

func TestSubscriptionService_Subscribe_LifetimeHasNoNextBilling(t *testing.T) {
	svc, _ := newSubscriptionFixture()

	subscription, err := svc.Subscribe(context.Background(), usecase.SubscribeInput{
		UserID: "crew-1", PlanID: "lifetime", Method: "transfer",
	})
	require.NoError(t, err)
	assert.Nil(t, subscription.NextBilling)
	assert.Equal(t, 299.00, subscription.Price)
}

func TestSubscriptionService_Subscribe_FreePlanRecordsNoRevenue(t *testing.T) {
	svc, recorder := newSubscriptionFixture()

	_, err := svc.Subscribe(context.Background(), usecase.SubscribeInput{
		UserID: "crew-1", PlanID: "free", Method: "none",
	})
	require.NoError(t, err)
	assert.Zero(t, recorder.total(entity.StreamSubscriptions))
}

func TestSubscriptionService_CancelSubscription(t *testing.T) {
	svc, _ := newSubscriptionFixture()
	ctx := context.Background()

	subscription, err := svc.Subscribe(ctx, usecase.SubscribeInput{
		UserID: "crew-1", PlanID: "starter", Method: "transfer",
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelSubscription(ctx, subscription.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	assert.Nil(t, cancelled.NextBilling)

	// Cancelling twice is idempotent.
	again, err := svc.CancelSubscription(ctx, subscription.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusCancelled, again.Status)
}

func TestSubscriptionService_CancelSubscription_NotFound(t *testing.T) {
	svc, _ := newSubscriptionFixture()

	_, err := svc.CancelSubscription(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_Analytics_ActiveOnly(t *testing.T) {
	svc, _ := newSubscriptionFixture()
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, usecase.SubscribeInput{UserID: "a", PlanID: "premium", Method: "transfer"})
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, usecase.SubscribeInput{UserID: "b", PlanID: "premium", Method: "transfer"})
	require.NoError(t, err)
	enterprise, err := svc.Subscribe(ctx, usecase.SubscribeInput{UserID: "c", PlanID: "enterprise", Method: "transfer"})
	require.NoError(t, err)

	_, err = svc.CancelSubscription(ctx, enterprise.ID)
	require.NoError(t, err)

	analytics, err := svc.Analytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, analytics.ActiveSubscriptions)
	assert.InDelta(t, 19.98, analytics.MonthlyRevenue, 1e-9)
	assert.InDelta(t, 19.98, analytics.RevenueByPlan["premium"], 1e-9)
	assert.NotContains(t, analytics.RevenueByPlan, "enterprise")
	assert.Equal(t, 0.05, analytics.ChurnRate)
}
