package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canopy-ads/internal/adapter/creative"
	httpadapter "canopy-ads/internal/adapter/http"
	"canopy-ads/internal/adapter/payment"
	"canopy-ads/internal/adapter/postgres"
	"canopy-ads/internal/adapter/usecase"
	"canopy-ads/internal/config"
	"canopy-ads/internal/db"
	"canopy-ads/internal/metrics"
)

// main is the entry point of the canopy-ads service. It loads configuration,
// optionally runs database migrations and seeds the demo inventory,
// initializes the database pool, repositories and usecases, then starts
// the HTTP server. On receiving a termination signal it gracefully shuts
// down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	screenRepo := postgres.NewScreenRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)

	provider := payment.NewProvider(cfg.Payment.WebhookSecret)
	generator := creative.NewGenerator(cfg.Creative.APIKey, cfg.Creative.Model, cfg.Creative.MaxTokens, logger)

	screenSvc := usecase.NewScreenUseCase(screenRepo, cfg.Pricing.MaxScreenBookings)
	campaignSvc := usecase.NewCampaignUseCase(
		campaignRepo, screenRepo, paymentRepo,
		provider, generator,
		cfg.Pricing.CPM, cfg.Pricing.Currency,
	)

	m := metrics.New()
	handler := httpadapter.NewHandler(screenSvc, campaignSvc, m, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
