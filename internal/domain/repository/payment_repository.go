package repository

import (
	"context"

	"freeport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPaymentNotFound is returned when a payment does not exist.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository stores payment attempts and their refund sub-records.
type PaymentRepository interface {
	// CreatePayment appends a settled payment attempt.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByID retrieves a payment by its unique ID.
	FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// UpdatePayment replaces a stored payment.
	UpdatePayment(ctx context.Context, payment *entity.Payment) error

	// AllPayments returns every payment in insertion order.
	AllPayments(ctx context.Context) ([]*entity.Payment, error)
}
