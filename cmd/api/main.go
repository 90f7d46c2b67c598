package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cassiomorais/payment-gateway/internal/bootstrap"
	"github.com/cassiomorais/payment-gateway/internal/controller"
	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/bank"
	"github.com/cassiomorais/payment-gateway/internal/service"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.New(ctx, "payment-gateway", "gateway")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	bankClient := bank.NewClient(app.Config.Bank, app.Logger, app.Metrics)
	paymentService := service.NewPaymentService(
		payment.NewValidator(),
		bankClient,
		app.Store,
		app.Logger,
		app.Metrics,
	)

	router := controller.NewRouter(controller.RouterDeps{
		PaymentService: paymentService,
		RedisClient:    app.Redis,
		Logger:         app.Logger,
		Metrics:        app.Metrics,
		CORSConfig:     app.Config.Server.CORS,
		EnableTracing:  app.Config.Observability.EnableTracing,
	})

	addr := fmt.Sprintf(":%d", app.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info().Str("addr", addr).Str("bank_url", app.Config.Bank.BaseURL).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-gCtx.Done():
			return gCtx.Err()
		case <-quit:
		}

		app.Logger.Info().Msg("Shutting down server...")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
		defer cancelShutdown()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("Server forced to shutdown")
		}
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		app.Logger.Fatal().Err(err).Msg("Server error")
	}
	app.Logger.Info().Msg("Server exited")
}
