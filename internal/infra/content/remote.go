package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/service"
)

// remoteProvider fetches catalogs from a lore service over HTTP and falls
// back to the builtin catalogs when the service is unreachable or returns
// malformed data. A fallback never fails the caller.
type remoteProvider struct {
	baseURL  string
	client   *http.Client
	fallback service.ContentProvider
	logger   *slog.Logger
}

// NewRemoteProvider creates a ContentProvider backed by a remote lore
// service at baseURL.
func NewRemoteProvider(baseURL string, timeout time.Duration, logger *slog.Logger) service.ContentProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &remoteProvider{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: timeout},
		fallback: NewBuiltinProvider(),
		logger:   logger,
	}
}

func (p *remoteProvider) CargoCatalog(ctx context.Context) []entity.CargoType {
	var catalog []entity.CargoType
	if err := p.fetch(ctx, "/cargo", &catalog); err != nil || len(catalog) == 0 {
		p.logFallback("cargo catalog", err)

		return p.fallback.CargoCatalog(ctx)
	}

	return catalog
}

func (p *remoteProvider) JobTemplates(ctx context.Context) []entity.JobTemplate {
	var templates []entity.JobTemplate
	if err := p.fetch(ctx, "/jobs", &templates); err != nil || len(templates) == 0 {
		p.logFallback("job templates", err)

		return p.fallback.JobTemplates(ctx)
	}

	return templates
}

func (p *remoteProvider) RunProfiles(ctx context.Context) []entity.RunProfile {
	var profiles []entity.RunProfile
	if err := p.fetch(ctx, "/smuggling", &profiles); err != nil || len(profiles) == 0 {
		p.logFallback("run profiles", err)

		return p.fallback.RunProfiles(ctx)
	}

	return profiles
}

func (p *remoteProvider) fetch(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}

func (p *remoteProvider) logFallback(what string, err error) {
	if p.logger == nil {
		return
	}

	if err != nil {
		p.logger.Warn("remote content unavailable, using builtin catalog",
			slog.String("catalog", what),
			slog.Any("error", err))
	} else {
		p.logger.Warn("remote content empty, using builtin catalog",
			slog.String("catalog", what))
	}
}
