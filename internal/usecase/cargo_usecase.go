package usecase

import (
	"context"

	"freeport/internal/domain/entity"
)

// GenerateManifestInput bounds a cargo manifest draw.
type GenerateManifestInput struct {
	Capacity  float64
	Tolerance entity.RiskTolerance
}

// CargoUsecase defines the interface for cargo manifest generation
type CargoUsecase interface {
	// GenerateManifest draws a random manifest within the given hold capacity,
	// restricted to cargo the tolerance permits
	GenerateManifest(ctx context.Context, input GenerateManifestInput) (*entity.CargoManifest, error)
}
