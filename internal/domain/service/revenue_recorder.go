package service

import (
	"context"

	"freeport/internal/domain/entity"
)

// RevenueRecorder is the push target the marketplace, subscription book and
// world simulator feed. The revenue use case implements it; no other store
// depends on another store directly.
type RevenueRecorder interface {
	// Record accumulates an amount on one of the fixed revenue streams.
	Record(ctx context.Context, stream entity.RevenueStream, amount float64) error
}
