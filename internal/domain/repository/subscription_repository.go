package repository

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSubscriptionNotFound is returned when a subscription does not exist.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository stores recurring-plan membership records.
type SubscriptionRepository interface {
	// CreateSubscription stores a new subscription record.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// UpdateSubscription replaces a stored subscription.
	UpdateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// AllSubscriptions returns every subscription in insertion order.
	AllSubscriptions(ctx context.Context) ([]*entity.Subscription, error)
}
