package payment

import (
	"time"

	"github.com/google/uuid"
)

// Status is the terminal outcome of a payment request.
type Status string

const (
	StatusAuthorized Status = "Authorized"
	StatusDeclined   Status = "Declined"
	StatusRejected   Status = "Rejected"
)

// Payment is the persisted record of a processed payment request. ID and
// Status are assigned once at construction and never change. The full card
// number and CVV are never part of the record; only the last four digits of
// the card number are kept.
type Payment struct {
	ID                 uuid.UUID
	Status             Status
	CardNumberLastFour string
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64
	CreatedAt          time.Time
}

// NewPayment builds the record for a validated request and the outcome
// decided for it. Validated card numbers are at least 14 digits, so the
// last-four slice is always safe.
func NewPayment(req *ValidPaymentRequest, status Status) *Payment {
	return &Payment{
		ID:                 uuid.New(),
		Status:             status,
		CardNumberLastFour: req.CardNumber[len(req.CardNumber)-4:],
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
		CreatedAt:          time.Now(),
	}
}
