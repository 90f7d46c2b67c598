package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domainErrors "github.com/cassiomorais/payment-gateway/internal/domain/errors"
	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "payment:"

// PaymentRepository is a Redis-backed payment store. It implements the same
// create-once/read contract as the in-memory store and exists so the gateway
// can keep its records across restarts when configured to.
type PaymentRepository struct {
	client *redis.Client
}

func NewPaymentRepository(client *redis.Client) *PaymentRepository {
	return &PaymentRepository{client: client}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payment %s: %w", p.ID, err)
	}

	// SETNX keeps the insert atomic; ids are never reused.
	ok, err := r.client.SetNX(ctx, keyPrefix+p.ID.String(), data, 0).Result()
	if err != nil {
		return fmt.Errorf("store payment %s: %w", p.ID, err)
	}
	if !ok {
		return fmt.Errorf("payment %s already stored", p.ID)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	data, err := r.client.Get(ctx, keyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domainErrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load payment %s: %w", id, err)
	}

	var p payment.Payment
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal payment %s: %w", id, err)
	}
	return &p, nil
}
