package repository

import (
	"context"

	"freeport/internal/domain/entity"
)

// RevenueRepository accumulates revenue by stream and retains the
// historical period series the forecaster fits against.
type RevenueRepository interface {
	// AddRevenue accumulates an amount on a stream and the period total.
	AddRevenue(ctx context.Context, stream entity.RevenueStream, amount float64) error

	// StreamTotals returns the running total per stream.
	StreamTotals(ctx context.Context) (map[entity.RevenueStream]float64, error)

	// PeriodTotal returns the revenue accumulated in the open period.
	PeriodTotal(ctx context.Context) (float64, error)

	// History returns the retained per-period revenue series, oldest first.
	History(ctx context.Context) ([]float64, error)

	// ClosePeriod appends the open period's total to the history and
	// resets it, returning the closed value.
	ClosePeriod(ctx context.Context) (float64, error)
}
