package impl

import (
	"context"
	"time"

	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/domain/service"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	maxUnitsPerLine     = 5
	unitValueJitterLow  = 0.9
	unitValueJitterHigh = 1.1
)

type cargoService struct {
	content service.ContentProvider
	random  service.RandomSource
}

// CargoServiceParams holds dependencies for CargoService, injected by Fx.
type CargoServiceParams struct {
	fx.In

	Content service.ContentProvider
	Random  service.RandomSource
}

// NewCargoService creates a new cargo manifest service instance
func NewCargoService(params CargoServiceParams) usecase.CargoUsecase {
	return &cargoService{
		content: params.Content,
		random:  params.Random,
	}
}

// GenerateManifest draws a random manifest within the given hold capacity.
// Each draw removes the cargo type from the pool, so a manifest never
// carries duplicate lines. Generation stops when the hold cannot fit
// another unit of anything left in the pool.
func (s *cargoService) GenerateManifest(ctx context.Context, input usecase.GenerateManifestInput) (*entity.CargoManifest, error) {
	if input.Capacity <= 0 {
		return nil, domainerrors.ErrInvalidCapacity
	}

	pool := make([]entity.CargoType, 0)
	for _, cargoType := range s.content.CargoCatalog(ctx) {
		if input.Tolerance.Eligible(cargoType.Legality) {
			pool = append(pool, cargoType)
		}
	}

	manifest := &entity.CargoManifest{
		ID:          uuid.New(),
		RiskLevel:   entity.RiskLow,
		GeneratedAt: time.Now(),
	}

	remaining := input.Capacity
	for len(pool) > 0 {
		idx := s.random.Intn(len(pool))
		cargoType := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		if cargoType.Volume <= 0 || cargoType.Volume > remaining {
			continue
		}

		maxUnits := int(remaining / cargoType.Volume)
		if maxUnits > maxUnitsPerLine {
			maxUnits = maxUnitsPerLine
		}
		quantity := 1 + s.random.Intn(maxUnits)

		item := entity.CargoItem{
			Type:      cargoType.Name,
			Legality:  cargoType.Legality,
			Quantity:  quantity,
			UnitValue: cargoType.BaseValue * s.random.Between(unitValueJitterLow, unitValueJitterHigh),
			Volume:    cargoType.Volume,
		}

		manifest.Items = append(manifest.Items, item)
		manifest.TotalValue += item.TotalValue()
		manifest.TotalVolume += item.TotalVolume()
		manifest.RiskLevel = entity.MaxRisk(manifest.RiskLevel, entity.ImpliedRisk(cargoType.Legality))

		remaining -= item.TotalVolume()
	}

	return manifest, nil
}
