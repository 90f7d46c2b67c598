package controller

import (
	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
)

// PaymentResponse represents a payment in API responses. The status is one
// of the display strings "Authorized", "Declined" or "Rejected".
type PaymentResponse struct {
	ID                 string         `json:"id"`
	Status             payment.Status `json:"status"`
	CardNumberLastFour string         `json:"cardNumberLastFour"`
	ExpiryMonth        int            `json:"expiryMonth"`
	ExpiryYear         int            `json:"expiryYear"`
	Currency           string         `json:"currency"`
	Amount             int64          `json:"amount"`
}

// RejectedResponse is the body of a validation failure: just the Rejected
// status, nothing else.
type RejectedResponse struct {
	Status payment.Status `json:"status"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// FromPayment converts a stored payment to its API representation.
func FromPayment(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID.String(),
		Status:             p.Status,
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}
}
