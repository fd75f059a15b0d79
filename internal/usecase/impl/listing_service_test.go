package impl

import (
	"context"
	"testing"

	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/infra/memory"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingFixture() (usecase.ListingUsecase, *stubRecorder) {
	recorder := newStubRecorder()
	svc := NewListingService(ListingServiceParams{
		ListingRepo: memory.NewListingRepository(),
		TxRepo:      memory.NewTransactionRepository(),
		Revenue:     recorder,
		Sink:        stubSink{},
		Publisher:   &stubPublisher{},
		Logger:      testLogger(),
	})

	return svc, recorder
}

func TestListingService_CreateListing_UnknownCategory(t *testing.T) {
	svc, _ := newListingFixture()

	_, err := svc.CreateListing(context.Background(), usecase.CreateListingInput{
		SellerID: "crew-1",
		Title:    "Phantom goods",
		Category: "contraband",
		Price:    100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownCategory)
}

func TestListingService_GetListing_CountsView(t *testing.T) {
	svc, _ := newListingFixture()
	ctx := context.Background()

	created, err := svc.CreateListing(ctx, usecase.CreateListingInput{
		SellerID: "crew-1",
		Title:    "Refurbished thruster",
		Category: entity.CategoryShipParts,
		Price:    1200,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Views)

	got, err := svc.GetListing(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)

	got, err = svc.GetListing(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)
}

func TestListingService_GetListing_NotFound(t *testing.T) {
	svc, _ := newListingFixture()

	_, err := svc.GetListing(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_Purchase_SettlesTransaction(t *testing.T) {
	svc, recorder := newListingFixture()
	ctx := context.Background()

	listing, err := svc.CreateListing(ctx, usecase.CreateListingInput{
		SellerID: "crew-1",
		Title:    "Sector nav charts",
		Category: entity.CategoryNavCharts,
		Price:    200,
	})
	require.NoError(t, err)

	result, err := svc.Purchase(ctx, usecase.PurchaseInput{
		ListingID: listing.ID,
		BuyerID:   "crew-2",
		Method:    "credits",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionStatusCompleted, result.Transaction.Status)
	assert.Equal(t, 200.0, result.Transaction.Amount)
	assert.InDelta(t, 30.0, result.Transaction.Royalty, 1e-9) // 15% on nav charts
	assert.Equal(t, 1, result.Listing.Purchases)
	assert.Equal(t, 200.0, result.Listing.Revenue)
	assert.Equal(t, entity.ListingStatusActive, result.Listing.Status)

	// Infinite inventory: a second purchase still settles.
	result, err = svc.Purchase(ctx, usecase.PurchaseInput{ListingID: listing.ID, BuyerID: "crew-3", Method: "credits"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Listing.Purchases)

	assert.InDelta(t, 400.0, recorder.total(entity.StreamMarketplace), 1e-9)
}

func TestListingService_Analytics_CategoryRollup(t *testing.T) {
	svc, _ := newListingFixture()
	ctx := context.Background()

	parts1, err := svc.CreateListing(ctx, usecase.CreateListingInput{
		SellerID: "a", Title: "Coil", Category: entity.CategoryShipParts, Price: 100,
	})
	require.NoError(t, err)
	_, err = svc.CreateListing(ctx, usecase.CreateListingInput{
		SellerID: "a", Title: "Hull plate", Category: entity.CategoryShipParts, Price: 300,
	})
	require.NoError(t, err)
	charts, err := svc.CreateListing(ctx, usecase.CreateListingInput{
		SellerID: "b", Title: "Charts", Category: entity.CategoryNavCharts, Price: 50,
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.Purchase(ctx, usecase.PurchaseInput{ListingID: parts1.ID, BuyerID: "c", Method: "credits"})
		require.NoError(t, err)
	}
	_, err = svc.Purchase(ctx, usecase.PurchaseInput{ListingID: charts.ID, BuyerID: "c", Method: "credits"})
	require.NoError(t, err)

	analytics, err := svc.Analytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, analytics.TotalListings)
	assert.Equal(t, 4, analytics.TotalTransactions)
	assert.InDelta(t, 350.0, analytics.TotalRevenue, 1e-9)

	parts := analytics.ByCategory[entity.CategoryShipParts]
	assert.Equal(t, 2, parts.Listings)
	assert.Equal(t, 3, parts.Transactions)
	assert.InDelta(t, 300.0, parts.Revenue, 1e-9)
	assert.InDelta(t, 200.0, parts.AvgPrice, 1e-9)

	// Sum of category revenue equals the marketplace total.
	var sum float64
	for _, stats := range analytics.ByCategory {
		sum += stats.Revenue
	}
	assert.InDelta(t, analytics.TotalRevenue, sum, 1e-9)

	// Most purchased first.
	require.NotEmpty(t, analytics.TopListings)
	assert.Equal(t, parts1.ID, analytics.TopListings[0].ID)
}

func TestListingService_Analytics_TopListingsStableTies(t *testing.T) {
	svc, _ := newListingFixture()
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		listing, err := svc.CreateListing(ctx, usecase.CreateListingInput{
			SellerID: "a", Title: "Tied", Category: entity.CategoryServices, Price: 10,
		})
		require.NoError(t, err)
		ids = append(ids, listing.ID)
	}

	analytics, err := svc.Analytics(ctx)
	require.NoError(t, err)
	require.Len(t, analytics.TopListings, 3)

	// All tied on zero purchases: insertion order is preserved.
	for i, listing := range analytics.TopListings {
		assert.Equal(t, ids[i], listing.ID)
	}
}
