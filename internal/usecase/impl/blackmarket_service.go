package impl

import (
	"context"
	"log/slog"
	"time"

	"freeport/config"
	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/domain/repository"
	"freeport/internal/domain/service"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Listing prices roll volatility in [0.8, 1.2]; drift re-rolls a
	// smaller band on active listings.
	priceVolatilityLow  = 0.8
	priceVolatilityHigh = 1.2
	driftVolatilityLow  = 0.95
	driftVolatilityHigh = 1.05
)

// blackMarketSeller labels the house side of off-the-books transactions.
const blackMarketSeller = "black_market"

type blackMarketService struct {
	marketRepo repository.BlackMarketRepository
	txRepo     repository.TransactionRepository
	content    service.ContentProvider
	random     service.RandomSource
	revenue    service.RevenueRecorder
	config     *config.Config
	logger     *slog.Logger
}

// BlackMarketServiceParams holds dependencies for BlackMarketService, injected by Fx.
type BlackMarketServiceParams struct {
	fx.In

	MarketRepo repository.BlackMarketRepository
	TxRepo     repository.TransactionRepository
	Content    service.ContentProvider
	Random     service.RandomSource
	Revenue    service.RevenueRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

// NewBlackMarketService creates a new black market service instance
func NewBlackMarketService(params BlackMarketServiceParams) usecase.BlackMarketUsecase {
	return &blackMarketService{
		marketRepo: params.MarketRepo,
		txRepo:     params.TxRepo,
		content:    params.Content,
		random:     params.Random,
		revenue:    params.Revenue,
		config:     params.Config,
		logger:     params.Logger,
	}
}

// GenerateListing creates a priced listing from a random catalog item
func (s *blackMarketService) GenerateListing(ctx context.Context) (*entity.BlackMarketListing, error) {
	catalog := s.content.CargoCatalog(ctx)
	if len(catalog) == 0 {
		return nil, errors.New("cargo catalog is empty")
	}

	item := catalog[s.random.Intn(len(catalog))]
	now := time.Now()

	listing := &entity.BlackMarketListing{
		ID:          uuid.New(),
		Item:        item.Name,
		Legality:    item.Legality,
		Rarity:      item.Rarity,
		AskingPrice: s.askingPrice(item),
		Risk:        entity.BlackMarketRisk(item.Legality),
		Status:      entity.BlackMarketStatusActive,
		ListedAt:    now,
		ExpiresAt:   now.Add(s.config.Simulation.MarketTTL),
		UpdatedAt:   now,
	}

	if err := s.marketRepo.CreateMarketListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create market listing")
	}

	return listing, nil
}

// ListListings retrieves all market listings in insertion order
func (s *blackMarketService) ListListings(ctx context.Context) ([]*entity.BlackMarketListing, error) {
	listings, err := s.marketRepo.AllMarketListings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list market listings")
	}

	return listings, nil
}

// Purchase attempts to buy a listing. An intercepted purchase records a
// failed transaction and leaves the listing purchasable; only a clean sale
// marks it sold.
func (s *blackMarketService) Purchase(ctx context.Context, id uuid.UUID, buyerID string) (*usecase.MarketPurchaseResult, error) {
	listing, err := s.marketRepo.FindMarketListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMarketListingNotFound) {
			return nil, domainerrors.ErrMarketListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find market listing")
	}

	if listing.Status != entity.BlackMarketStatusActive {
		return nil, domainerrors.ErrMarketListingSold
	}

	profile := entity.ProfileForTier(listing.Risk)
	intercepted := s.random.Chance(profile.InterceptChance)

	tx := &entity.Transaction{
		ID:        uuid.New(),
		ListingID: listing.ID,
		BuyerID:   buyerID,
		SellerID:  blackMarketSeller,
		Amount:    listing.AskingPrice,
		Method:    "credits",
		Status:    entity.TransactionStatusCompleted,
		CreatedAt: time.Now(),
	}
	if intercepted {
		tx.Status = entity.TransactionStatusFailed
	}
	if err := s.txRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to record market transaction")
	}

	if intercepted {
		return &usecase.MarketPurchaseResult{
			Listing:     listing,
			Intercepted: true,
			Price:       listing.AskingPrice,
		}, nil
	}

	listing.Status = entity.BlackMarketStatusSold
	listing.SoldTo = buyerID
	listing.UpdatedAt = tx.CreatedAt
	if err := s.marketRepo.UpdateMarketListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to mark listing sold")
	}

	if err := s.revenue.Record(ctx, entity.StreamMerchandise, listing.AskingPrice); err != nil {
		s.logger.Warn("Failed to record market sale revenue",
			slog.String("listing_id", listing.ID.String()),
			slog.Any("error", err),
		)
	}

	return &usecase.MarketPurchaseResult{
		Listing: listing,
		Price:   listing.AskingPrice,
	}, nil
}

// DriftPrices re-rolls a smaller volatility on every active listing
func (s *blackMarketService) DriftPrices(ctx context.Context) (int, error) {
	listings, err := s.marketRepo.AllMarketListings(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list market listings")
	}

	drifted := 0
	for _, listing := range listings {
		if listing.Status != entity.BlackMarketStatusActive {
			continue
		}

		listing.AskingPrice *= s.random.Between(driftVolatilityLow, driftVolatilityHigh)
		listing.UpdatedAt = time.Now()
		if err := s.marketRepo.UpdateMarketListing(ctx, listing); err != nil {
			return drifted, errors.Wrap(err, "failed to drift listing price")
		}
		drifted++
	}

	return drifted, nil
}

// PurgeExpired removes active listings past their expiry
func (s *blackMarketService) PurgeExpired(ctx context.Context) (int, error) {
	purged, err := s.marketRepo.PurgeExpiredMarketListings(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired market listings")
	}

	return purged, nil
}

func (s *blackMarketService) askingPrice(item entity.CargoType) float64 {
	rarityMultiplier := 1 + item.Rarity
	volatility := s.random.Between(priceVolatilityLow, priceVolatilityHigh)

	return item.BaseValue * rarityMultiplier * entity.LegalityMultiplier(item.Legality) * volatility
}
