package impl

import (
	"context"
	"testing"

	"freeport/config"
	"freeport/internal/domain/entity"
	domainerrors "freeport/internal/domain/errors"
	"freeport/internal/infra/memory"
	"freeport/internal/infra/random"
	"freeport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentFixture(successRate float64, seed int64) usecase.PaymentUsecase {
	cfg := &config.Config{}
	cfg.Payment.SuccessRate = successRate
	cfg.Payment.ProcessingDelay = 0

	return NewPaymentService(PaymentServiceParams{
		PaymentRepo: memory.NewPaymentRepository(),
		Random:      random.NewWithSeed(seed),
		Config:      cfg,
	})
}

func TestPaymentService_ProcessPayment_AlwaysSucceedsAtFullRate(t *testing.T) {
	svc := newPaymentFixture(1.0, 1)
	ctx := context.Background()

	payment, err := svc.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		Amount: 49.99, Currency: "credits", Method: "transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
}

func TestPaymentService_ProcessPayment_DeclineIsARecordedResult(t *testing.T) {
	svc := newPaymentFixture(0.0, 1)
	ctx := context.Background()

	payment, err := svc.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		Amount: 10, Currency: "credits", Method: "transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, payment.Status)

	// The decline is on the ledger.
	payments, err := svc.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, entity.PaymentStatusFailed, payments[0].Status)
}

func TestPaymentService_ProcessPayment_SeededFrequency(t *testing.T) {
	svc := newPaymentFixture(0.95, 42)
	ctx := context.Background()

	const trials = 2000
	succeeded := 0
	for i := 0; i < trials; i++ {
		payment, err := svc.ProcessPayment(ctx, usecase.ProcessPaymentInput{
			Amount: 1, Currency: "credits", Method: "transfer",
		})
		require.NoError(t, err)
		if payment.Status == entity.PaymentStatusCompleted {
			succeeded++
		}
	}

	assert.InDelta(t, 0.95, float64(succeeded)/trials, 0.02)
}

func TestPaymentService_RefundPayment_FullAmount(t *testing.T) {
	svc := newPaymentFixture(1.0, 1)
	ctx := context.Background()

	payment, err := svc.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		Amount: 75.50, Currency: "credits", Method: "transfer",
	})
	require.NoError(t, err)

	refunded, err := svc.RefundPayment(ctx, payment.ID, "buyer remorse")
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusRefunded, refunded.Status)
	require.NotNil(t, refunded.Refund)
	assert.Equal(t, 75.50, refunded.Refund.Amount)
	assert.Equal(t, "buyer remorse", refunded.Refund.Reason)

	// A second refund is rejected.
	_, err = svc.RefundPayment(ctx, payment.ID, "again")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotRefundable)
}

func TestPaymentService_RefundPayment_NotFoundLeavesLedgerUntouched(t *testing.T) {
	svc := newPaymentFixture(1.0, 1)
	ctx := context.Background()

	payment, err := svc.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		Amount: 20, Currency: "credits", Method: "transfer",
	})
	require.NoError(t, err)

	_, err = svc.RefundPayment(ctx, uuid.New(), "wrong id")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)

	got, err := svc.GetPayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, got.Status)
	assert.Nil(t, got.Refund)
}

func TestPaymentService_RefundPayment_FailedPaymentNotRefundable(t *testing.T) {
	svc := newPaymentFixture(0.0, 1)
	ctx := context.Background()

	payment, err := svc.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		Amount: 20, Currency: "credits", Method: "transfer",
	})
	require.NoError(t, err)

	_, err = svc.RefundPayment(ctx, payment.ID, "refund a decline")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotRefundable)
}
