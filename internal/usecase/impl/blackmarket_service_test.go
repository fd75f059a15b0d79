package impl

import (
	"context"
	"testing"
	"time"

	"freeport/config"
	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/domain/repository"
	"freeport/internal/infra/content"
	"freeport/internal/infra/memory"
	"freeport/internal/infra/random"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blackMarketFixture struct {
	svc      usecase.BlackMarketUsecase
	market   repository.BlackMarketRepository
	txs      repository.TransactionRepository
	recorder *stubRecorder
}

func newBlackMarketFixture(seed int64, ttl time.Duration) *blackMarketFixture {
	cfg := &config.Config{}
	cfg.Simulation.MarketTTL = ttl

	market := memory.NewBlackMarketRepository()
	txs := memory.NewTransactionRepository()
	recorder := newStubRecorder()

	svc := NewBlackMarketService(BlackMarketServiceParams{
		MarketRepo: market,
		TxRepo:     txs,
		Content:    content.NewBuiltinProvider(),
		Random:     random.NewWithSeed(seed),
		Revenue:    recorder,
		Config:     cfg,
		Logger:     testLogger(),
	})

	return &blackMarketFixture{svc: svc, market: market, txs: txs, recorder: recorder}
}

func TestBlackMarketService_GenerateListing_PriceWithinVolatilityBand(t *testing.T) {
	f := newBlackMarketFixture(1, time.Hour)

	for i := 0; i < 100; i++ {
		listing, err := f.svc.GenerateListing(context.Background())
		require.NoError(t, err)

		assert.Equal(t, entity.BlackMarketStatusActive, listing.Status)
		assert.Equal(t, entity.BlackMarketRisk(listing.Legality), listing.Risk)

		base := basePriceFor(t, listing.Item)
		low := base * (1 + listing.Rarity) * entity.LegalityMultiplier(listing.Legality) * priceVolatilityLow
		high := base * (1 + listing.Rarity) * entity.LegalityMultiplier(listing.Legality) * priceVolatilityHigh
		assert.GreaterOrEqual(t, listing.AskingPrice, low)
		assert.LessOrEqual(t, listing.AskingPrice, high)
	}
}

func basePriceFor(t *testing.T, item string) float64 {
	t.Helper()
	for _, cargoType := range content.NewBuiltinProvider().CargoCatalog(context.Background()) {
		if cargoType.Name == item {
			return cargoType.BaseValue
		}
	}
	t.Fatalf("unknown catalog item %q", item)

	return 0
}

func TestBlackMarketService_Purchase_CleanSale(t *testing.T) {
	// Seeded so the legal-cargo listing's 5% interception roll misses.
	f := newBlackMarketFixture(2, time.Hour)
	ctx := context.Background()

	var result *usecase.MarketPurchaseResult
	for {
		listing, err := f.svc.GenerateListing(ctx)
		require.NoError(t, err)

		result, err = f.svc.Purchase(ctx, listing.ID, "crew-1")
		require.NoError(t, err)
		if !result.Intercepted {
			break
		}
	}

	assert.Equal(t, entity.BlackMarketStatusSold, result.Listing.Status)
	assert.Equal(t, "crew-1", result.Listing.SoldTo)
	assert.InDelta(t, result.Price, f.recorder.total(entity.StreamMerchandise), 1e-9)

	// A sold listing cannot be bought again.
	_, err := f.svc.Purchase(ctx, result.Listing.ID, "crew-2")
	assert.ErrorIs(t, err, domainerrors.ErrMarketListingSold)
}

func TestBlackMarketService_Purchase_InterceptionLeavesListingPurchasable(t *testing.T) {
	f := newBlackMarketFixture(3, time.Hour)
	ctx := context.Background()

	// Keep buying until an interception lands.
	for attempt := 0; attempt < 10000; attempt++ {
		listing, err := f.svc.GenerateListing(ctx)
		require.NoError(t, err)

		result, err := f.svc.Purchase(ctx, listing.ID, "crew-1")
		require.NoError(t, err)
		if !result.Intercepted {
			continue
		}

		// Failed heist: the listing stays active and purchasable.
		stored, err := f.market.FindMarketListingByID(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.BlackMarketStatusActive, stored.Status)
		assert.Empty(t, stored.SoldTo)

		// The interception is on record as a failed transaction.
		txs, err := f.txs.AllTransactions(ctx)
		require.NoError(t, err)
		failed := 0
		for _, tx := range txs {
			if tx.Status == entity.TransactionStatusFailed {
				failed++
			}
		}
		assert.Positive(t, failed)

		return
	}
	t.Fatal("no interception observed")
}

func TestBlackMarketService_Purchase_HighRiskInterceptionFrequency(t *testing.T) {
	f := newBlackMarketFixture(4, time.Hour)
	ctx := context.Background()

	// Seed one high-risk listing directly; intercepted purchases leave it
	// active, so the same listing can be attacked repeatedly.
	listing := &entity.BlackMarketListing{
		ID:          uuid.New(),
		Item:        "void spice",
		Legality:    entity.LegalityIllegal,
		Rarity:      0.9,
		AskingPrice: 10000,
		Risk:        entity.RiskHigh,
		Status:      entity.BlackMarketStatusActive,
		ListedAt:    time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, f.market.CreateMarketListing(ctx, listing))

	const trials = 5000
	intercepted := 0
	for i := 0; i < trials; i++ {
		result, err := f.svc.Purchase(ctx, listing.ID, "crew-1")
		require.NoError(t, err)
		if result.Intercepted {
			intercepted++

			continue
		}

		// Re-arm the listing after a clean sale.
		listing.Status = entity.BlackMarketStatusActive
		listing.SoldTo = ""
		require.NoError(t, f.market.UpdateMarketListing(ctx, listing))
	}

	assert.InDelta(t, 0.20, float64(intercepted)/trials, 0.02)
}

func TestBlackMarketService_DriftPrices_ActiveOnly(t *testing.T) {
	f := newBlackMarketFixture(5, time.Hour)
	ctx := context.Background()

	listing, err := f.svc.GenerateListing(ctx)
	require.NoError(t, err)

	sold := &entity.BlackMarketListing{
		ID:          uuid.New(),
		Item:        "sold goods",
		AskingPrice: 500,
		Status:      entity.BlackMarketStatusSold,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.market.CreateMarketListing(ctx, sold))

	drifted, err := f.svc.DriftPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, drifted)

	after, err := f.market.FindMarketListingByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after.AskingPrice, listing.AskingPrice*driftVolatilityLow)
	assert.LessOrEqual(t, after.AskingPrice, listing.AskingPrice*driftVolatilityHigh)

	unchanged, err := f.market.FindMarketListingByID(ctx, sold.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, unchanged.AskingPrice)
}

func TestBlackMarketService_PurgeExpired(t *testing.T) {
	f := newBlackMarketFixture(6, -time.Minute)
	ctx := context.Background()

	_, err := f.svc.GenerateListing(ctx)
	require.NoError(t, err)

	purged, err := f.svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)
}
