package impl

import (
	"context"
	"testing"

	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/infra/content"
	"freeport/internal/infra/random"
	"freeport/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCargoFixture(seed int64) usecase.CargoUsecase {
	return NewCargoService(CargoServiceParams{
		Content: content.NewBuiltinProvider(),
		Random:  random.NewWithSeed(seed),
	})
}

func TestCargoService_GenerateManifest_InvalidCapacity(t *testing.T) {
	svc := newCargoFixture(1)

	_, err := svc.GenerateManifest(context.Background(), usecase.GenerateManifestInput{
		Capacity: 0, Tolerance: entity.ToleranceLow,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCapacity)
}

func TestCargoService_GenerateManifest_RespectsCapacityAndSums(t *testing.T) {
	svc := newCargoFixture(7)

	manifest, err := svc.GenerateManifest(context.Background(), usecase.GenerateManifestInput{
		Capacity: 20, Tolerance: entity.ToleranceHigh,
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, manifest.TotalVolume, 20.0)

	var value, volume float64
	for _, item := range manifest.Items {
		value += item.TotalValue()
		volume += item.TotalVolume()
	}
	assert.InDelta(t, manifest.TotalValue, value, 1e-9)
	assert.InDelta(t, manifest.TotalVolume, volume, 1e-9)
}

func TestCargoService_GenerateManifest_LowToleranceIsLegalOnly(t *testing.T) {
	svc := newCargoFixture(3)

	for i := 0; i < 50; i++ {
		manifest, err := svc.GenerateManifest(context.Background(), usecase.GenerateManifestInput{
			Capacity: 30, Tolerance: entity.ToleranceLow,
		})
		require.NoError(t, err)

		for _, item := range manifest.Items {
			assert.Equal(t, entity.LegalityLegal, item.Legality)
		}
		assert.Equal(t, entity.RiskLow, manifest.RiskLevel)
	}
}

func TestCargoService_GenerateManifest_NoDuplicateLines(t *testing.T) {
	svc := newCargoFixture(11)

	manifest, err := svc.GenerateManifest(context.Background(), usecase.GenerateManifestInput{
		Capacity: 100, Tolerance: entity.ToleranceHigh,
	})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, item := range manifest.Items {
		assert.False(t, seen[item.Type], "duplicate line for %s", item.Type)
		seen[item.Type] = true
	}
}

func TestCargoService_GenerateManifest_RiskEscalatesWithIllegalCargo(t *testing.T) {
	svc := newCargoFixture(5)

	// A large hold with high tolerance keeps drawing until the pool is
	// exhausted, so restricted or illegal cargo is guaranteed on board.
	manifest, err := svc.GenerateManifest(context.Background(), usecase.GenerateManifestInput{
		Capacity: 1000, Tolerance: entity.ToleranceHigh,
	})
	require.NoError(t, err)

	hasIllegal := false
	for _, item := range manifest.Items {
		if item.Legality == entity.LegalityIllegal {
			hasIllegal = true
		}
	}
	require.True(t, hasIllegal)
	assert.Equal(t, entity.RiskHigh, manifest.RiskLevel)
}

func TestCargoService_GenerateManifest_DeterministicWithSeed(t *testing.T) {
	first, err := newCargoFixture(99).GenerateManifest(context.Background(), usecase.GenerateManifestInput{
		Capacity: 25, Tolerance: entity.ToleranceMedium,
	})
	require.NoError(t, err)

	second, err := newCargoFixture(99).GenerateManifest(context.Background(), usecase.GenerateManifestInput{
		Capacity: 25, Tolerance: entity.ToleranceMedium,
	})
	require.NoError(t, err)

	assert.Equal(t, first.Items, second.Items)
	assert.InDelta(t, first.TotalValue, second.TotalValue, 1e-9)
}
