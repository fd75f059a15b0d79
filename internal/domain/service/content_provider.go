package service

import (
	"context"

	"freeport/internal/domain/entity"
)

// ContentProvider supplies the simulation catalogs: cargo types, job
// templates and smuggling run profiles. The remote variant falls back to
// the builtin catalogs on any failure; callers never see provider errors.
type ContentProvider interface {
	// CargoCatalog returns the cargo type catalog.
	CargoCatalog(ctx context.Context) []entity.CargoType

	// JobTemplates returns the weighted job template catalog.
	JobTemplates(ctx context.Context) []entity.JobTemplate

	// RunProfiles returns the smuggling run profile catalog.
	RunProfiles(ctx context.Context) []entity.RunProfile
}
