package service

import (
	"context"

	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/bank"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/observability"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentService drives a payment request end to end: validation, the single
// authorization attempt against the acquiring bank, persistence of the
// outcome, and retrieval by id.
type PaymentService struct {
	validator   *payment.Validator
	authorizer  bank.Authorizer
	paymentRepo payment.Repository
	logger      zerolog.Logger
	metrics     *observability.Metrics
}

func NewPaymentService(
	validator *payment.Validator,
	authorizer bank.Authorizer,
	paymentRepo payment.Repository,
	logger zerolog.Logger,
	metrics *observability.Metrics,
) *PaymentService {
	return &PaymentService{
		validator:   validator,
		authorizer:  authorizer,
		paymentRepo: paymentRepo,
		logger:      logger.With().Str("component", "payment_service").Logger(),
		metrics:     metrics,
	}
}

// ProcessPayment validates the request, authorizes it with the bank and
// persists the outcome. A validation failure returns the violations and
// skips the bank entirely; a bank transport failure returns
// ErrBankUnavailable. In neither case is a payment record created.
func (s *PaymentService) ProcessPayment(ctx context.Context, req payment.PaymentRequest) (*payment.Payment, error) {
	valid, violations := s.validator.Validate(req)
	if violations != nil {
		s.logger.Info().Int("violations", len(violations)).Msg("Payment request rejected")
		s.countPayment(payment.StatusRejected)
		return nil, violations
	}

	res, err := s.authorizer.Authorize(ctx, bank.AuthorizationRequest{
		CardNumber: valid.CardNumber,
		ExpiryDate: valid.ExpiryString(),
		Currency:   valid.Currency,
		Amount:     valid.Amount,
		CVV:        valid.CVV,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Bank authorization failed")
		return nil, err
	}

	status := payment.StatusDeclined
	if res.Authorized {
		status = payment.StatusAuthorized
	}

	p := payment.NewPayment(valid, status)
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.countPayment(status)
	s.logger.Info().
		Str("payment_id", p.ID.String()).
		Str("status", string(p.Status)).
		Str("authorization_code", res.AuthorizationCode).
		Msg("Payment processed")

	return p, nil
}

// GetPaymentByID returns the stored payment for id, or ErrPaymentNotFound.
func (s *PaymentService) GetPaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	s.logger.Debug().Str("payment_id", id.String()).Msg("Looking up payment")
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *PaymentService) countPayment(status payment.Status) {
	if s.metrics != nil {
		s.metrics.PaymentsTotal.WithLabelValues(string(status)).Inc()
	}
}
