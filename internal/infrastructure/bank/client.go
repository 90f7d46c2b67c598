package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	domainErrors "github.com/cassiomorais/payment-gateway/internal/domain/errors"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/config"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/observability"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

const paymentsPath = "/payments"

// AuthorizationRequest is the body sent to the acquiring bank. The expiry is
// a single MM/YYYY string.
type AuthorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// AuthorizationResponse is the bank's decision. The authorization code is
// opaque and not persisted.
type AuthorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// Authorizer is the port the payment service depends on. Implementations
// make exactly one authorization attempt per call.
type Authorizer interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResponse, error)
}

// Client calls the acquiring bank over HTTP. Any transport failure, non-2xx
// status or undecodable body surfaces as ErrBankUnavailable.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[*AuthorizationResponse]
	logger     zerolog.Logger
	metrics    *observability.Metrics
}

func NewClient(cfg config.BankConfig, logger zerolog.Logger, metrics *observability.Metrics) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		logger:     logger.With().Str("component", "bank_client").Logger(),
		metrics:    metrics,
	}

	if cfg.CircuitBreaker.Enabled {
		c.breaker = gobreaker.NewCircuitBreaker[*AuthorizationResponse](gobreaker.Settings{
			Name:    "bank",
			Timeout: cfg.CircuitBreaker.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= cfg.CircuitBreaker.MinRequests &&
					failureRatio >= cfg.CircuitBreaker.FailureRatio
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				c.logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("Bank circuit breaker state changed")
				if c.metrics != nil {
					c.metrics.BankBreakerState.Set(breakerStateValue(to))
				}
			},
		})
	}

	return c
}

func (c *Client) Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResponse, error) {
	if c.breaker == nil {
		return c.authorize(ctx, req)
	}

	res, err := c.breaker.Execute(func() (*AuthorizationResponse, error) {
		return c.authorize(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: circuit open", domainErrors.ErrBankUnavailable)
	}
	return res, err
}

func (c *Client) authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal authorization request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build authorization request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	httpRes, err := c.httpClient.Do(httpReq)
	if c.metrics != nil {
		c.metrics.BankRequestDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.countRequest("transport_error")
		c.logger.Error().Err(err).Msg("Bank request failed")
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrBankUnavailable, err)
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode < 200 || httpRes.StatusCode > 299 {
		c.countRequest("bad_status")
		c.logger.Error().Int("status", httpRes.StatusCode).Msg("Bank returned unexpected status")
		return nil, fmt.Errorf("%w: unexpected status %d", domainErrors.ErrBankUnavailable, httpRes.StatusCode)
	}

	var res AuthorizationResponse
	if err := json.NewDecoder(httpRes.Body).Decode(&res); err != nil {
		c.countRequest("bad_body")
		return nil, fmt.Errorf("%w: decode response: %v", domainErrors.ErrBankUnavailable, err)
	}

	if res.Authorized {
		c.countRequest("authorized")
	} else {
		c.countRequest("declined")
	}
	c.logger.Debug().
		Bool("authorized", res.Authorized).
		Str("currency", req.Currency).
		Int64("amount", req.Amount).
		Msg("Bank authorization completed")

	return &res, nil
}

func (c *Client) countRequest(outcome string) {
	if c.metrics != nil {
		c.metrics.BankRequestsTotal.WithLabelValues(outcome).Inc()
	}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
