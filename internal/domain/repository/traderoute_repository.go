package repository

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRouteNotFound is returned when a trade route does not exist.
var ErrRouteNotFound = errors.New("trade route not found")

// TradeRouteRepository stores the fixed trade route network.
type TradeRouteRepository interface {
	// CreateRoute stores a generated route.
	CreateRoute(ctx context.Context, route *entity.TradeRoute) error

	// FindRouteByID retrieves a route by its unique ID.
	FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.TradeRoute, error)

	// UpdateRoute replaces a stored route.
	UpdateRoute(ctx context.Context, route *entity.TradeRoute) error

	// AllRoutes returns every route in insertion order.
	AllRoutes(ctx context.Context) ([]*entity.TradeRoute, error)

	// CountRoutes returns the number of stored routes.
	CountRoutes(ctx context.Context) (int, error)
}
