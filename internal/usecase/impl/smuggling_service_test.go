package impl

import (
	"context"
	"testing"

	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/infra/content"
	"freeport/internal/infra/memory"
	"freeport/internal/infra/random"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSmugglingFixture(seed int64) (usecase.SmugglingUsecase, *stubRecorder) {
	recorder := newStubRecorder()
	svc := NewSmugglingService(SmugglingServiceParams{
		RunRepo:   memory.NewSmugglingRepository(),
		Content:   content.NewBuiltinProvider(),
		Random:    random.NewWithSeed(seed),
		Revenue:   recorder,
		Publisher: &stubPublisher{},
		Logger:    testLogger(),
	})

	return svc, recorder
}

func TestSmugglingService_LaunchRun(t *testing.T) {
	svc, _ := newSmugglingFixture(1)
	ctx := context.Background()

	run, err := svc.LaunchRun(ctx)
	require.NoError(t, err)

	assert.Equal(t, entity.RunStatusRunning, run.Status)
	assert.NotEqual(t, run.Origin, run.Destination)
	assert.Positive(t, run.Value)
	assert.Nil(t, run.ResolvedAt)

	active, err := svc.ActiveRuns(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, run.ID, active[0].ID)
}

func TestSmugglingService_ResolveRun_SingleTerminalOutcome(t *testing.T) {
	svc, recorder := newSmugglingFixture(2)
	ctx := context.Background()

	run, err := svc.LaunchRun(ctx)
	require.NoError(t, err)

	resolved, err := svc.ResolveRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAt)

	profile := entity.ProfileForTier(resolved.Tier)
	switch resolved.Status {
	case entity.RunStatusDelivered:
		assert.InDelta(t, resolved.Value*profile.RewardMultiplier, resolved.Payout, 1e-9)
		assert.InDelta(t, resolved.Payout, recorder.total(entity.StreamMerchandise), 1e-9)
	case entity.RunStatusIntercepted:
		assert.Zero(t, resolved.Payout)
		assert.Zero(t, recorder.total(entity.StreamMerchandise))
	default:
		t.Fatalf("unexpected status %s", resolved.Status)
	}

	// The outcome is decided once; a resolved run is gone from in-flight.
	_, err = svc.ResolveRun(ctx, run.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRunNotFound)

	active, err := svc.ActiveRuns(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	recent, err := svc.RecentRuns(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, run.ID, recent[0].ID)
}

func TestSmugglingService_ResolveRun_NotFound(t *testing.T) {
	svc, _ := newSmugglingFixture(1)

	_, err := svc.ResolveRun(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrRunNotFound)
}

func TestSmugglingService_HighTierInterceptionFrequency(t *testing.T) {
	svc, _ := newSmugglingFixture(7)
	ctx := context.Background()

	const trials = 5000
	intercepted := 0
	highTier := 0
	for i := 0; i < trials; i++ {
		run, err := svc.LaunchRun(ctx)
		require.NoError(t, err)

		resolved, err := svc.ResolveRun(ctx, run.ID)
		require.NoError(t, err)

		if resolved.Tier != entity.RiskHigh {
			continue
		}
		highTier++
		if resolved.Status == entity.RunStatusIntercepted {
			intercepted++
		}
	}

	require.Greater(t, highTier, 500)
	assert.InDelta(t, 0.20, float64(intercepted)/float64(highTier), 0.03)
}

func TestSmugglingService_RecentRuns_CappedHistory(t *testing.T) {
	svc, _ := newSmugglingFixture(9)
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 60; i++ {
		run, err := svc.LaunchRun(ctx)
		require.NoError(t, err)
		_, err = svc.ResolveRun(ctx, run.ID)
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	recent, err := svc.RecentRuns(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 50)

	// Oldest evicted first: the retained window is the last 50, oldest first.
	for i, run := range recent {
		assert.Equal(t, ids[10+i], run.ID)
	}
}
