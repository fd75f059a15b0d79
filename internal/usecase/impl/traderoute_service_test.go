package impl

import (
	"context"
	"testing"

	"freeport/internal/infra/memory"
	"freeport/internal/infra/random"
	"freeport/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouteFixture(seed int64) usecase.TradeRouteUsecase {
	return NewTradeRouteService(TradeRouteServiceParams{
		RouteRepo: memory.NewTradeRouteRepository(),
		Random:    random.NewWithSeed(seed),
		Logger:    testLogger(),
	})
}

func TestTradeRouteService_InitializeRoutes_EveryPairOnce(t *testing.T) {
	svc := newRouteFixture(1)
	ctx := context.Background()

	created, err := svc.InitializeRoutes(ctx)
	require.NoError(t, err)

	pairs := len(knownLocations) * (len(knownLocations) - 1) / 2
	assert.Equal(t, pairs, created)

	routes, err := svc.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, routes, pairs)

	seen := map[string]bool{}
	for _, route := range routes {
		key := route.Origin + "|" + route.Destination
		assert.False(t, seen[key], "duplicate route %s", key)
		seen[key] = true

		assert.GreaterOrEqual(t, route.Risk, 0.0)
		assert.LessOrEqual(t, route.Risk, 1.0)
		assert.Positive(t, route.Distance)
		assert.GreaterOrEqual(t, route.Tolls, 0.0)
	}

	// Re-initializing an existing network is a no-op.
	again, err := svc.InitializeRoutes(ctx)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestTradeRouteService_LawlessEndpointsCollectNoTolls(t *testing.T) {
	svc := newRouteFixture(2)
	ctx := context.Background()

	_, err := svc.InitializeRoutes(ctx)
	require.NoError(t, err)

	routes, err := svc.ListRoutes(ctx)
	require.NoError(t, err)

	lawless := map[string]bool{}
	for _, location := range knownLocations {
		if location.Lawless {
			lawless[location.Name] = true
		}
	}

	for _, route := range routes {
		if lawless[route.Origin] || lawless[route.Destination] {
			assert.Zero(t, route.Tolls, "route %s-%s", route.Origin, route.Destination)
		} else {
			assert.Positive(t, route.Tolls, "route %s-%s", route.Origin, route.Destination)
		}
	}
}

func TestTradeRouteService_SimulateTraffic_WalksWithinBounds(t *testing.T) {
	svc := newRouteFixture(3)
	ctx := context.Background()

	_, err := svc.InitializeRoutes(ctx)
	require.NoError(t, err)

	before, err := svc.ListRoutes(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.SimulateTraffic(ctx))

	after, err := svc.ListRoutes(ctx)
	require.NoError(t, err)

	for i, route := range after {
		step := before[i].Traffic * trafficStepFraction
		assert.GreaterOrEqual(t, route.Traffic, before[i].Traffic-step-1e-9)
		assert.LessOrEqual(t, route.Traffic, before[i].Traffic+step+1e-9)
		assert.GreaterOrEqual(t, route.Traffic, 0.0)
	}
}
