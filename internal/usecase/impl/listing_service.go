package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/domain/repository"
	"freeport/internal/domain/service"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const topListingsLimit = 10

type listingService struct {
	listingRepo repository.ListingRepository
	txRepo      repository.TransactionRepository
	revenue     service.RevenueRecorder
	sink        service.PersistenceSink
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	TxRepo      repository.TransactionRepository
	Revenue     service.RevenueRecorder
	Sink        service.PersistenceSink
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewListingService creates a new marketplace listing service instance
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		listingRepo: params.ListingRepo,
		txRepo:      params.TxRepo,
		revenue:     params.Revenue,
		sink:        params.Sink,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// CreateListing registers a new listing in the given category
func (s *listingService) CreateListing(ctx context.Context, input usecase.CreateListingInput) (*entity.Listing, error) {
	if _, ok := entity.RoyaltyRate(input.Category); !ok {
		return nil, domainerrors.ErrUnknownCategory
	}

	now := time.Now()
	listing := &entity.Listing{
		ID:          uuid.New(),
		SellerID:    input.SellerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Status:      entity.ListingStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	s.archiveListing(ctx, listing)

	return listing, nil
}

// GetListing retrieves a listing and counts the lookup as a view
func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	listing.Views++
	listing.UpdatedAt = time.Now()
	if err := s.listingRepo.UpdateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to record listing view")
	}

	return listing, nil
}

// ListListings retrieves all listings in insertion order
func (s *listingService) ListListings(ctx context.Context) ([]*entity.Listing, error) {
	listings, err := s.listingRepo.AllListings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return listings, nil
}

// Purchase settles a purchase against a listing and records the transaction.
// Listings carry infinite inventory, so a purchase never retires the listing.
func (s *listingService) Purchase(ctx context.Context, input usecase.PurchaseInput) (*usecase.PurchaseResult, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, input.ListingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	rate, _ := entity.RoyaltyRate(listing.Category)
	royalty := listing.Price * rate

	tx := &entity.Transaction{
		ID:        uuid.New(),
		ListingID: listing.ID,
		BuyerID:   input.BuyerID,
		SellerID:  listing.SellerID,
		Category:  listing.Category,
		Amount:    listing.Price,
		Method:    input.Method,
		Status:    entity.TransactionStatusCompleted,
		Royalty:   royalty,
		CreatedAt: time.Now(),
	}

	if err := s.txRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to record transaction")
	}

	listing.Purchases++
	listing.Revenue += listing.Price
	listing.UpdatedAt = tx.CreatedAt
	if err := s.listingRepo.UpdateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to update listing totals")
	}

	if err := s.revenue.Record(ctx, entity.StreamMarketplace, listing.Price); err != nil {
		s.logger.Warn("Failed to record marketplace revenue",
			slog.String("listing_id", listing.ID.String()),
			slog.Any("error", err),
		)
	}

	s.archiveListing(ctx, listing)
	if err := s.sink.SaveTransaction(ctx, tx); err != nil {
		s.logger.Warn("Failed to archive transaction",
			slog.String("transaction_id", tx.ID.String()),
			slog.Any("error", err),
		)
	}

	if err := s.publisher.PublishPlatformEvent(ctx, &service.PlatformEvent{
		Kind:    "marketplace.purchase",
		Subject: listing.ID.String(),
		Amount:  listing.Price,
		Detail:  listing.Title,
	}); err != nil {
		s.logger.Warn("Failed to publish purchase event", slog.Any("error", err))
	}

	return &usecase.PurchaseResult{Transaction: tx, Listing: listing}, nil
}

// Analytics computes the marketplace rollup
func (s *listingService) Analytics(ctx context.Context) (*usecase.MarketplaceAnalytics, error) {
	listings, err := s.listingRepo.AllListings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}
	transactions, err := s.txRepo.AllTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	analytics := &usecase.MarketplaceAnalytics{
		TotalListings: len(listings),
		ByCategory:    make(map[entity.ListingCategory]usecase.CategoryStats),
	}

	priceSums := make(map[entity.ListingCategory]float64)
	for _, listing := range listings {
		stats := analytics.ByCategory[listing.Category]
		stats.Listings++
		analytics.ByCategory[listing.Category] = stats
		priceSums[listing.Category] += listing.Price
	}
	for category, stats := range analytics.ByCategory {
		stats.AvgPrice = priceSums[category] / float64(stats.Listings)
		analytics.ByCategory[category] = stats
	}

	for _, tx := range transactions {
		if tx.Status != entity.TransactionStatusCompleted {
			continue
		}
		analytics.TotalTransactions++
		analytics.TotalRevenue += tx.Amount
		analytics.TotalRoyalties += tx.Royalty

		stats := analytics.ByCategory[tx.Category]
		stats.Transactions++
		stats.Revenue += tx.Amount
		analytics.ByCategory[tx.Category] = stats
	}

	// Stable sort keeps insertion order between listings with equal purchases.
	top := make([]*entity.Listing, len(listings))
	copy(top, listings)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Purchases > top[j].Purchases
	})
	if len(top) > topListingsLimit {
		top = top[:topListingsLimit]
	}
	analytics.TopListings = top

	return analytics, nil
}

func (s *listingService) archiveListing(ctx context.Context, listing *entity.Listing) {
	if err := s.sink.SaveListing(ctx, listing); err != nil {
		s.logger.Warn("Failed to archive listing",
			slog.String("listing_id", listing.ID.String()),
			slog.Any("error", err),
		)
	}
}
