package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cassiomorais/payment-gateway/internal/banksim"
	"github.com/cassiomorais/payment-gateway/internal/infrastructure/observability"
	"github.com/spf13/viper"
)

func main() {
	v := viper.New()
	v.SetDefault("port", 8090)
	v.SetDefault("log_level", "info")
	v.SetEnvPrefix("BANKSIM")
	v.AutomaticEnv()

	logger := observability.InitLogger(v.GetString("log_level"), os.Stdout)

	addr := fmt.Sprintf(":%d", v.GetInt("port"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      banksim.NewServer(logger).Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Starting bank simulator")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start bank simulator")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down bank simulator...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Simulator forced to shutdown")
	}
}
