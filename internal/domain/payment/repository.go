package payment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for payment persistence. Payments are
// created once and read by id; there is no update or delete.
type Repository interface {
	// Create stores a new payment keyed by its id.
	Create(ctx context.Context, payment *Payment) error

	// GetByID retrieves a payment by id, returning ErrPaymentNotFound for
	// ids never stored.
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
}
