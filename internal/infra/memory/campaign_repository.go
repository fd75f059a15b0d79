package memory

import (
	"context"
	"sync"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"

	"github.com/google/uuid"
)

// campaignRepository implements repository.CampaignRepository.
type campaignRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entity.Campaign
	order []uuid.UUID
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository() repository.CampaignRepository {
	return &campaignRepository{
		byID: make(map[uuid.UUID]*entity.Campaign),
	}
}

// CreateCampaign stores a new campaign with zeroed metrics.
func (repo *campaignRepository) CreateCampaign(_ context.Context, campaign *entity.Campaign) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *campaign
	repo.byID[campaign.ID] = &clone
	repo.order = append(repo.order, campaign.ID)

	return nil
}

// FindCampaignByID retrieves a campaign by its unique ID.
func (repo *campaignRepository) FindCampaignByID(_ context.Context, id uuid.UUID) (*entity.Campaign, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	campaign, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrCampaignNotFound
	}

	clone := *campaign

	return &clone, nil
}

// UpdateCampaign replaces a stored campaign.
func (repo *campaignRepository) UpdateCampaign(_ context.Context, campaign *entity.Campaign) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[campaign.ID]; !ok {
		return repository.ErrCampaignNotFound
	}

	clone := *campaign
	repo.byID[campaign.ID] = &clone

	return nil
}

// AllCampaigns returns every campaign in insertion order.
func (repo *campaignRepository) AllCampaigns(_ context.Context) ([]*entity.Campaign, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Campaign, 0, len(repo.order))
	for _, id := range repo.order {
		clone := *repo.byID[id]
		out = append(out, &clone)
	}

	return out, nil
}
