package memory

import (
	"context"
	"maps"
	"sync"

	"freeport/internal/domain/entity"
	"freeport/internal/domain/repository"

	"github.com/google/uuid"
)

// paymentRepository implements repository.PaymentRepository.
type paymentRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*entity.Payment
	order []uuid.UUID
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository() repository.PaymentRepository {
	return &paymentRepository{
		byID: make(map[uuid.UUID]*entity.Payment),
	}
}

func clonePayment(payment *entity.Payment) *entity.Payment {
	clone := *payment
	if payment.Metadata != nil {
		clone.Metadata = maps.Clone(payment.Metadata)
	}
	if payment.Refund != nil {
		refund := *payment.Refund
		clone.Refund = &refund
	}

	return &clone
}

// CreatePayment appends a settled payment attempt.
func (repo *paymentRepository) CreatePayment(_ context.Context, payment *entity.Payment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.byID[payment.ID] = clonePayment(payment)
	repo.order = append(repo.order, payment.ID)

	return nil
}

// FindPaymentByID retrieves a payment by its unique ID.
func (repo *paymentRepository) FindPaymentByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	payment, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}

	return clonePayment(payment), nil
}

// UpdatePayment replaces a stored payment.
func (repo *paymentRepository) UpdatePayment(_ context.Context, payment *entity.Payment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[payment.ID]; !ok {
		return repository.ErrPaymentNotFound
	}

	repo.byID[payment.ID] = clonePayment(payment)

	return nil
}

// AllPayments returns every payment in insertion order.
func (repo *paymentRepository) AllPayments(_ context.Context) ([]*entity.Payment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Payment, 0, len(repo.order))
	for _, id := range repo.order {
		out = append(out, clonePayment(repo.byID[id]))
	}

	return out, nil
}
