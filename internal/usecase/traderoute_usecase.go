package usecase

import (
	"context"

	"freeport/internal/domain/entity"
)

// TradeRouteUsecase defines the interface for the trade route graph
type TradeRouteUsecase interface {
	// InitializeRoutes builds one route per pair of known locations.
	// Calling it again when routes exist is a no-op.
	InitializeRoutes(ctx context.Context) (int, error)

	// ListRoutes retrieves all routes in insertion order
	ListRoutes(ctx context.Context) ([]*entity.TradeRoute, error)

	// SimulateTraffic applies one random-walk traffic step to every route,
	// rolling for interdiction events along the way
	SimulateTraffic(ctx context.Context) error
}
