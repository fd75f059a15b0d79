package impl

import (
	"context"
	"log/slog"
	"time"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"
	"freeport/internal/domain/service"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// knownLocations is the fixed trade network. Routes are generated for every
// unordered pair at startup.
var knownLocations = []entity.Location{
	{Name: "Port Meridian", X: 0, Y: 0},
	{Name: "Kessler Station", X: 40, Y: 25},
	{Name: "The Drift", X: -30, Y: 60, Lawless: true},
	{Name: "New Tortuga", X: 75, Y: -15, Lawless: true},
	{Name: "Halcyon Yards", X: -55, Y: -40},
	{Name: "Redline Depot", X: 20, Y: -70},
}

const (
	baseRouteRisk      = 0.1
	lawlessRiskPenalty = 0.25
	routeRiskJitter    = 0.1
	tollPerDistance    = 5.0

	trafficFloor        = 0.0
	trafficInitLow      = 20.0
	trafficInitHigh     = 80.0
	trafficStepFraction = 0.1

	// Per traffic tick, a route's interdiction odds are its risk scaled down.
	interdictionScale = 0.1
)

type tradeRouteService struct {
	routeRepo repository.TradeRouteRepository
	random    service.RandomSource
	logger    *slog.Logger
}

// TradeRouteServiceParams holds dependencies for TradeRouteService, injected by Fx.
type TradeRouteServiceParams struct {
	fx.In

	RouteRepo repository.TradeRouteRepository
	Random    service.RandomSource
	Logger    *slog.Logger
}

// NewTradeRouteService creates a new trade route service instance
func NewTradeRouteService(params TradeRouteServiceParams) usecase.TradeRouteUsecase {
	return &tradeRouteService{
		routeRepo: params.RouteRepo,
		random:    params.Random,
		logger:    params.Logger,
	}
}

// InitializeRoutes builds one route per unordered pair of known locations.
// Calling it again when routes exist is a no-op.
func (s *tradeRouteService) InitializeRoutes(ctx context.Context) (int, error) {
	existing, err := s.routeRepo.CountRoutes(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count routes")
	}
	if existing > 0 {
		return 0, nil
	}

	created := 0
	now := time.Now()
	for i := 0; i < len(knownLocations); i++ {
		for j := i + 1; j < len(knownLocations); j++ {
			origin, destination := knownLocations[i], knownLocations[j]
			distance := entity.Distance(origin, destination)

			route := &entity.TradeRoute{
				ID:          uuid.New(),
				Origin:      origin.Name,
				Destination: destination.Name,
				Distance:    distance,
				Traffic:     s.random.Between(trafficInitLow, trafficInitHigh),
				Risk:        s.routeRisk(origin, destination),
				Tolls:       routeTolls(origin, destination, distance),
				CreatedAt:   now,
				UpdatedAt:   now,
			}

			if err := s.routeRepo.CreateRoute(ctx, route); err != nil {
				return created, errors.Wrap(err, "failed to create route")
			}
			created++
		}
	}

	s.logger.Info("Trade route network initialized", slog.Int("routes", created))

	return created, nil
}

// ListRoutes retrieves all routes in insertion order
func (s *tradeRouteService) ListRoutes(ctx context.Context) ([]*entity.TradeRoute, error) {
	routes, err := s.routeRepo.AllRoutes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list routes")
	}

	return routes, nil
}

// SimulateTraffic applies one random-walk traffic step to every route,
// rolling for interdiction events along the way
func (s *tradeRouteService) SimulateTraffic(ctx context.Context) error {
	routes, err := s.routeRepo.AllRoutes(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list routes")
	}

	for _, route := range routes {
		step := route.Traffic * trafficStepFraction
		route.Traffic += s.random.Between(-step, step)
		if route.Traffic < trafficFloor {
			route.Traffic = trafficFloor
		}

		if s.random.Chance(route.Risk * interdictionScale) {
			route.Interdictions++
			s.logger.Info("Interdiction on trade route",
				slog.String("origin", route.Origin),
				slog.String("destination", route.Destination),
				slog.Int("total", route.Interdictions),
			)
		}

		route.UpdatedAt = time.Now()
		if err := s.routeRepo.UpdateRoute(ctx, route); err != nil {
			return errors.Wrap(err, "failed to update route traffic")
		}
	}

	return nil
}

// routeRisk derives risk from the endpoints plus a small jitter, clamped
// to [0, 1].
func (s *tradeRouteService) routeRisk(origin, destination entity.Location) float64 {
	risk := baseRouteRisk
	if origin.Lawless {
		risk += lawlessRiskPenalty
	}
	if destination.Lawless {
		risk += lawlessRiskPenalty
	}
	risk += s.random.Between(-routeRiskJitter, routeRiskJitter)

	if risk < 0 {
		return 0
	}
	if risk > 1 {
		return 1
	}

	return risk
}

// routeTolls is deterministic: lawless endpoints collect no customs tolls.
func routeTolls(origin, destination entity.Location, distance float64) float64 {
	if origin.Lawless || destination.Lawless {
		return 0
	}

	return distance * tollPerDistance
}
