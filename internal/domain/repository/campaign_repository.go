package repository

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCampaignNotFound is returned when a campaign does not exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository stores marketing campaigns and their funnel metrics.
type CampaignRepository interface {
	// CreateCampaign stores a new campaign with zeroed metrics.
	CreateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// FindCampaignByID retrieves a campaign by its unique ID.
	FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// UpdateCampaign replaces a stored campaign.
	UpdateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// AllCampaigns returns every campaign in insertion order.
	AllCampaigns(ctx context.Context) ([]*entity.Campaign, error)
}
