package usecase

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscribeInput carries the fields for a new subscription.
type SubscribeInput struct {
	UserID string
	PlanID string
	Method string
}

// SubscriptionAnalytics summarizes active subscriptions.
type SubscriptionAnalytics struct {
	ActiveSubscriptions int                `json:"active_subscriptions"`
	MonthlyRevenue      float64            `json:"monthly_revenue"`
	RevenueByPlan       map[string]float64 `json:"revenue_by_plan"`
	ChurnRate           float64            `json:"churn_rate"`
}

// SubscriptionUsecase defines the interface for subscription plan use cases
type SubscriptionUsecase interface {
	// Subscribe enrolls a user in a plan from the fixed plan table
	Subscribe(ctx context.Context, input SubscribeInput) (*entity.Subscription, error)

	// CancelSubscription marks an active subscription as cancelled
	CancelSubscription(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// ListPlans returns the fixed plan table
	ListPlans(ctx context.Context) ([]*entity.Plan, error)

	// Analytics computes the rollup over active subscriptions only
	Analytics(ctx context.Context) (*SubscriptionAnalytics, error)
}
