package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cassiomorais/payment-gateway/internal/infrastructure/config"
	"github.com/cassiomorais/payment-gateway/pkg/retry"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient connects to Redis, retrying with backoff so the gateway survives
// a store that comes up after it does.
func NewClient(ctx context.Context, cfg *config.RedisConfig, logger zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	retryCfg := retry.Config{
		MaxAttempts:  cfg.ConnectRetries,
		InitialDelay: cfg.ConnectRetryDelay,
		MaxDelay:     30 * time.Second,
		OnRetry: func(attempt uint, err error) {
			logger.Warn().Uint("attempt", attempt).Err(err).Msg("Redis connection failed, retrying")
		},
	}
	if retryCfg.MaxAttempts == 0 {
		retryCfg.MaxAttempts = 5
	}
	if retryCfg.InitialDelay <= 0 {
		retryCfg.InitialDelay = time.Second
	}

	err := retry.Do(ctx, retryCfg, func() error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr(), err)
	}

	return client, nil
}
