package postgres

import (
	"context"
	"log/slog"

	"freeport/config"
	"freeport/internal/domain/entity"
	"freeport/internal/domain/service"
	"freeport/internal/errors"
	"freeport/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormSink archives platform records into PostgreSQL.
type gormSink struct {
	db *gorm.DB
}

// noopSink is used when no database is configured.
type noopSink struct{}

func (noopSink) SaveListing(context.Context, *entity.Listing) error           { return nil }
func (noopSink) SaveTransaction(context.Context, *entity.Transaction) error   { return nil }
func (noopSink) SaveSubscription(context.Context, *entity.Subscription) error { return nil }
func (noopSink) SaveCampaign(context.Context, *entity.Campaign) error         { return nil }

// SinkParams holds dependencies for PersistenceSink, injected by Fx
type SinkParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPersistenceSink creates a PersistenceSink based on configuration.
// Without a configured database the sink is a no-op and the platform runs
// purely in memory.
func NewPersistenceSink(params SinkParams) (service.PersistenceSink, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("Postgres not configured, archival sink disabled")

		return noopSink{}, nil
	}

	db, err := newClient(params.Lc, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Postgres archival sink enabled")

	return &gormSink{db: db}, nil
}

func (s *gormSink) SaveListing(ctx context.Context, listing *entity.Listing) error {
	m := &model.ListingModel{
		ID:          listing.ID,
		SellerID:    listing.SellerID,
		Title:       listing.Title,
		Description: listing.Description,
		Category:    string(listing.Category),
		Price:       listing.Price,
		Status:      string(listing.Status),
		Views:       listing.Views,
		Purchases:   listing.Purchases,
		Revenue:     listing.Revenue,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}

	return errors.Wrap(s.upsert(ctx, m), "failed to archive listing")
}

func (s *gormSink) SaveTransaction(ctx context.Context, tx *entity.Transaction) error {
	m := &model.TransactionModel{
		ID:        tx.ID,
		ListingID: tx.ListingID,
		BuyerID:   tx.BuyerID,
		SellerID:  tx.SellerID,
		Category:  string(tx.Category),
		Amount:    tx.Amount,
		Method:    tx.Method,
		Status:    string(tx.Status),
		Royalty:   tx.Royalty,
		CreatedAt: tx.CreatedAt,
	}

	return errors.Wrap(s.upsert(ctx, m), "failed to archive transaction")
}

func (s *gormSink) SaveSubscription(ctx context.Context, sub *entity.Subscription) error {
	m := &model.SubscriptionModel{
		ID:          sub.ID,
		UserID:      sub.UserID,
		PlanID:      sub.PlanID,
		Method:      sub.Method,
		Status:      string(sub.Status),
		Price:       sub.Price,
		StartDate:   sub.StartDate,
		NextBilling: sub.NextBilling,
		CancelledAt: sub.CancelledAt,
	}

	return errors.Wrap(s.upsert(ctx, m), "failed to archive subscription")
}

func (s *gormSink) SaveCampaign(ctx context.Context, campaign *entity.Campaign) error {
	m := &model.CampaignModel{
		ID:          campaign.ID,
		Name:        campaign.Name,
		Channel:     campaign.Channel,
		Budget:      campaign.Budget,
		Status:      campaign.Status,
		Impressions: campaign.Metrics.Impressions,
		Clicks:      campaign.Metrics.Clicks,
		Conversions: campaign.Metrics.Conversions,
		Cost:        campaign.Metrics.Cost,
		CreatedAt:   campaign.CreatedAt,
		UpdatedAt:   campaign.UpdatedAt,
	}

	return errors.Wrap(s.upsert(ctx, m), "failed to archive campaign")
}

func (s *gormSink) upsert(ctx context.Context, record any) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPersistenceSink),
)
