package usecase

import (
	"context"

	"freeport/internal/domain/entity"
)

// Forecast is the least-squares projection over closed revenue periods.
type Forecast struct {
	Available bool    `json:"available"`
	NextValue float64 `json:"next_value,omitempty"`
	Slope     float64 `json:"slope,omitempty"`
	Intercept float64 `json:"intercept,omitempty"`
	Periods   int     `json:"periods"`
}

// StreamShare is one stream's slice of the running total.
type StreamShare struct {
	Amount float64 `json:"amount"`
	Share  float64 `json:"share"`
}

// GoalProgress reports period revenue against a configured target.
type GoalProgress struct {
	Target   float64 `json:"target"`
	Achieved float64 `json:"achieved"`
	Progress float64 `json:"progress"`
}

// RevenueBreakdown is the full revenue report.
type RevenueBreakdown struct {
	Total    float64                              `json:"total"`
	ByStream map[entity.RevenueStream]StreamShare `json:"by_stream"`
	Goals    map[string]GoalProgress              `json:"goals"`
}

// RevenueUsecase defines the interface for revenue aggregation use cases
type RevenueUsecase interface {
	// Record adds revenue to one of the fixed streams
	Record(ctx context.Context, stream entity.RevenueStream, amount float64) error

	// Forecast projects the next period by ordinary least squares.
	// Fewer than three closed periods means no forecast.
	Forecast(ctx context.Context) (*Forecast, error)

	// Breakdown reports per-stream shares and goal progress
	Breakdown(ctx context.Context) (*RevenueBreakdown, error)

	// ClosePeriod rolls the running period total into the history series
	ClosePeriod(ctx context.Context) (float64, error)
}
