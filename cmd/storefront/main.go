package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ovenaura/internal/backend"
	"ovenaura/internal/config"
	"ovenaura/internal/handler"
	"ovenaura/internal/pricing"
	"ovenaura/internal/probe"
	"ovenaura/internal/router"
	"ovenaura/internal/service"
	"ovenaura/internal/session"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load() // Load .env file if it exists

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting ovenaura storefront gateway")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Restore the persisted session
	sess := session.NewStore(cfg.Session.TokenFile, logger)
	if err := sess.Hydrate(); err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	// Initialize backend client
	client, err := backend.NewClient(cfg.Backend, sess, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize backend client: %w", err)
	}

	// Initialize services
	cartService := service.NewCartService(client, client, sess, cfg.Storefront.MaxQuantity, logger)
	authService := service.NewAuthService(client, sess, cartService, logger)
	catalogService := service.NewCatalogService(client, pricing.NewFormatter(cfg.Storefront.CurrencySymbol), cfg.Storefront.MaxQuantity, logger)
	checkoutService := service.NewCheckoutService(client, cartService, sess, logger)
	orderService := service.NewOrderService(client, sess, logger)
	adminService := service.NewAdminService(client, sess, logger)
	prober := probe.New(client, cfg.Probe.Timeout, cfg.Probe.RetryDelay, logger)

	// Validate the stored token and load the cart
	restoreCtx, restoreCancel := context.WithTimeout(ctx, cfg.Backend.Timeout)
	if user, err := authService.Restore(restoreCtx); err != nil {
		logger.Warn().Err(err).Msg("starting signed out")
	} else if user != nil {
		logger.Info().Str("user_id", user.ID).Msg("resumed session")
	}
	restoreCancel()

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Status:  handler.NewStatusHandler(prober, logger),
		Auth:    handler.NewAuthHandler(authService, logger),
		Product: handler.NewProductHandler(catalogService, logger),
		Cart:    handler.NewCartHandler(cartService, logger),
		Order:   handler.NewOrderHandler(checkoutService, orderService, logger),
		Admin:   handler.NewAdminHandler(adminService, logger),
	}

	// Initialize router
	mux := router.New(handlers, router.Options{
		AllowedOrigin: cfg.Server.AllowedOrigin,
		APIKey:        cfg.Server.APIKey,
	}, logger)

	// Create HTTP server. The write timeout leaves room for a backend call
	// plus the probe's retry.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Backend.Timeout + 2*cfg.Probe.Timeout + cfg.Probe.RetryDelay,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("backend", cfg.Backend.BaseURL).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
