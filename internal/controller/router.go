package controller

import (
	"time"

	"github.com/cassiomorais/payment-gateway/internal/infrastructure/config"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/observability"
	customMW "github.com/cassiomorais/payment-gateway/internal/middleware"
	"github.com/cassiomorais/payment-gateway/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type RouterDeps struct {
	PaymentService *service.PaymentService
	RedisClient    *redis.Client // nil unless the redis backend is active
	Logger         zerolog.Logger
	Metrics        *observability.Metrics
	CORSConfig     config.CORSConfig
	EnableTracing  bool
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if deps.EnableTracing {
		r.Use(customMW.Tracing())
	}
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(customMW.Recoverer(deps.Logger))
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))
	r.Use(customMW.Metrics(deps.Metrics))

	healthH := NewHealthController(deps.RedisClient)
	paymentH := NewPaymentController(deps.PaymentService)

	r.Get("/health", healthH.Health)
	r.Get("/health/ready", healthH.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/payment", paymentH.ProcessPayment)
	r.Get("/payment/{id}", paymentH.GetPayment)

	return r
}
