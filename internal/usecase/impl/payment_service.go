package impl

import (
	"context"
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

type paymentService struct {
	paymentRepo repository.PaymentRepository
	random      service.RandomSource
	config      *config.Config
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	Random      service.RandomSource
	Config      *config.Config
}

// NewPaymentService creates a new simulated payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: params.PaymentRepo,
		random:      params.Random,
		config:      params.Config,
	}
}

// ProcessPayment runs a payment through the simulated processor.
// The processor waits the configured latency, then draws success against the
// configured rate. A declined payment is recorded and returned, not an error.
func (s *paymentService) ProcessPayment(ctx context.Context, input usecase.ProcessPaymentInput) (*entity.Payment, error) {
	if delay := s.config.Payment.ProcessingDelay; delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-timer.C:
		}
	}

	status := entity.PaymentStatusFailed
	if s.random.Chance(s.config.Payment.SuccessRate) {
		status = entity.PaymentStatusCompleted
	}

	payment := &entity.Payment{
		ID:        uuid.New(),
		Amount:    input.Amount,
		Currency:  input.Currency,
		Method:    input.Method,
		Status:    status,
		Metadata:  input.Metadata,
		CreatedAt: time.Now(),
	}

	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	return payment, nil
}

// GetPayment retrieves a recorded payment
func (s *paymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

// RefundPayment issues a full refund for a completed payment. Partial
// refunds are not supported. A missing payment leaves the ledger untouched.
func (s *paymentService) RefundPayment(ctx context.Context, id uuid.UUID, reason string) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	if payment.Status != entity.PaymentStatusCompleted {
		return nil, domainerrors.ErrPaymentNotRefundable
	}
	if payment.Refund != nil {
		return nil, domainerrors.ErrPaymentNotRefundable
	}

	payment.Status = entity.PaymentStatusRefunded
	payment.Refund = &entity.Refund{
		Reason:     reason,
		Amount:     payment.Amount,
		RefundedAt: time.Now(),
	}

	if err := s.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to record refund")
	}

	return payment, nil
}

// ListPayments retrieves all recorded payments in insertion order
func (s *paymentService) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.AllPayments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
