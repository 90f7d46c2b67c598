package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/config"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/observability"
	infraRedis "github.com/cassiomorais/payment-gateway/internal/infrastructure/redis"
	"github.com/cassiomorais/payment-gateway/internal/repository/memory"
	redisRepo "github.com/cassiomorais/payment-gateway/internal/repository/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// App carries the wired infrastructure shared by commands.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Metrics *observability.Metrics

	// Store is the payment store chosen by storage.backend.
	Store payment.Repository

	// Redis is nil unless the redis backend is active.
	Redis *redis.Client
}

func New(ctx context.Context, serviceName string, metricsNamespace string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(cfg.Observability.LogLevel, os.Stdout)
	logger.Info().Str("service", serviceName).Msg("Starting")

	if cfg.Observability.EnableTracing {
		tp, err := observability.InitTracer(serviceName, cfg.Observability.JaegerEndpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			go func() {
				<-ctx.Done()
				observability.Shutdown(context.Background(), tp)
			}()
			logger.Info().Msg("Tracing enabled")
		}
	}

	metrics := observability.NewMetrics(metricsNamespace, nil)

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
	}

	switch cfg.Storage.Backend {
	case "redis":
		client, err := infraRedis.NewClient(ctx, &cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		app.Redis = client
		app.Store = redisRepo.NewPaymentRepository(client)
		logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Using Redis payment store")
	default:
		app.Store = memory.NewPaymentRepository()
		logger.Info().Msg("Using in-memory payment store")
	}

	return app, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		a.Redis.Close()
	}
}
