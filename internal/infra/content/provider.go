// Package content provides the cargo, job, and smuggling catalogs that feed
// the universe simulation, either from a remote lore service or from builtin
// static tables.
package content

import (
	"log/slog"

	"freeport/config"
	"freeport/internal/domain/constants"
	"freeport/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for ContentProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewContentProvider creates a ContentProvider based on configuration
func NewContentProvider(params ProviderParams) (service.ContentProvider, error) {
	cfg := params.Config.Content
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.ContentProviderBuiltin {
		logger.Info("Using builtin content catalogs")

		return NewBuiltinProvider(), nil
	}

	switch cfg.Provider {
	case constants.ContentProviderRemote:
		if cfg.BaseURL == "" {
			return nil, errors.New("base URL is required for remote content provider")
		}
		logger.Info("Using remote content provider",
			slog.String("base_url", cfg.BaseURL),
		)

		return NewRemoteProvider(cfg.BaseURL, cfg.Timeout, logger), nil

	default:
		return nil, errors.Errorf("unknown content provider: %s", cfg.Provider)
	}
}

// Module provides the content FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewContentProvider),
)
