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

// churnRatePlaceholder is reported until real cohort tracking exists.
const churnRatePlaceholder = 0.05

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	revenue          service.RevenueRecorder
	sink             service.PersistenceSink
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Revenue          service.RevenueRecorder
	Sink             service.PersistenceSink
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		revenue:          params.Revenue,
		sink:             params.Sink,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

// Subscribe enrolls a user in a plan from the fixed plan table
func (s *subscriptionService) Subscribe(ctx context.Context, input usecase.SubscribeInput) (*entity.Subscription, error) {
	plan, ok := entity.PlanByID(input.PlanID)
	if !ok {
		return nil, domainerrors.ErrInvalidPlan
	}

	now := time.Now()
	subscription := &entity.Subscription{
		ID:        uuid.New(),
		UserID:    input.UserID,
		PlanID:    plan.ID,
		Method:    input.Method,
		Status:    entity.SubscriptionStatusActive,
		Price:     plan.Price,
		Features:  plan.Features,
		StartDate: now,
	}

	// A zero billing period means a lifetime purchase with nothing to renew.
	if plan.PeriodDays > 0 {
		next := now.AddDate(0, 0, plan.PeriodDays)
		subscription.NextBilling = &next
	}

	if err := s.subscriptionRepo.CreateSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	if plan.Price > 0 {
		if err := s.revenue.Record(ctx, entity.StreamSubscriptions, plan.Price); err != nil {
			s.logger.Warn("Failed to record subscription revenue",
				slog.String("subscription_id", subscription.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	s.archiveSubscription(ctx, subscription)

	if err := s.publisher.PublishPlatformEvent(ctx, &service.PlatformEvent{
		Kind:    "subscription.created",
		Subject: subscription.ID.String(),
		Amount:  plan.Price,
		Detail:  plan.ID,
	}); err != nil {
		s.logger.Warn("Failed to publish subscription event", slog.Any("error", err))
	}

	return subscription, nil
}

// CancelSubscription marks an active subscription as cancelled. There is no
// proration; the revenue already recorded stands.
func (s *subscriptionService) CancelSubscription(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	if subscription.Status == entity.SubscriptionStatusCancelled {
		return subscription, nil
	}

	now := time.Now()
	subscription.Status = entity.SubscriptionStatusCancelled
	subscription.CancelledAt = &now
	subscription.NextBilling = nil

	if err := s.subscriptionRepo.UpdateSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to cancel subscription")
	}

	s.archiveSubscription(ctx, subscription)

	return subscription, nil
}

// ListPlans returns the fixed plan table
func (s *subscriptionService) ListPlans(_ context.Context) ([]*entity.Plan, error) {
	return entity.Plans(), nil
}

// Analytics computes the rollup over active subscriptions only
func (s *subscriptionService) Analytics(ctx context.Context) (*usecase.SubscriptionAnalytics, error) {
	subscriptions, err := s.subscriptionRepo.AllSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	analytics := &usecase.SubscriptionAnalytics{
		RevenueByPlan: make(map[string]float64),
		ChurnRate:     churnRatePlaceholder,
	}

	for _, subscription := range subscriptions {
		if subscription.Status != entity.SubscriptionStatusActive {
			continue
		}
		analytics.ActiveSubscriptions++
		analytics.MonthlyRevenue += subscription.Price
		analytics.RevenueByPlan[subscription.PlanID] += subscription.Price
	}

	return analytics, nil
}

func (s *subscriptionService) archiveSubscription(ctx context.Context, subscription *entity.Subscription) {
	if err := s.sink.SaveSubscription(ctx, subscription); err != nil {
		s.logger.Warn("Failed to archive subscription",
			slog.String("subscription_id", subscription.ID.String()),
			slog.Any("error", err),
		)
	}
}
