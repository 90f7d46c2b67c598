package memory

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/cassiomorais/payment-gateway/internal/domain/errors"
	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
	"github.com/google/uuid"
)

// PaymentRepository is the in-memory payment store. Records live for the
// lifetime of the process. Safe for concurrent use.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*payment.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[uuid.UUID]*payment.Payment),
	}
}

// Create stores a payment keyed by its id. Ids are assigned once and never
// reused, so a duplicate insert indicates a programming error.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[p.ID]; exists {
		return fmt.Errorf("payment %s already stored", p.ID)
	}
	r.payments[p.ID] = p
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, domainErrors.ErrPaymentNotFound
	}
	return p, nil
}

// Size returns the number of stored payments.
func (r *PaymentRepository) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.payments)
}
