package usecase

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
)

// ProcessPaymentInput carries the fields for a simulated payment.
type ProcessPaymentInput struct {
	Amount   float64
	Currency string
	Method   string
	Metadata map[string]string
}

// PaymentUsecase defines the interface for simulated payment use cases
type PaymentUsecase interface {
	// ProcessPayment runs a payment through the simulated processor.
	// A declined payment is a normal result, not an error.
	ProcessPayment(ctx context.Context, input ProcessPaymentInput) (*entity.Payment, error)

	// GetPayment retrieves a recorded payment
	GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// RefundPayment issues a full refund for a completed payment
	RefundPayment(ctx context.Context, id uuid.UUID, reason string) (*entity.Payment, error)

	// ListPayments retrieves all recorded payments in insertion order
	ListPayments(ctx context.Context) ([]*entity.Payment, error)
}
