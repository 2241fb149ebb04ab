// Command api is the PlayTrack Data API server.
//
// Usage:
//
//	playtrack-api
//	API_PORT=8080 playtrack-api
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/playtrack/playtrack-data/internal/api"
	"github.com/playtrack/playtrack-data/internal/cache"
	"github.com/playtrack/playtrack-data/internal/config"
	"github.com/playtrack/playtrack-data/internal/provider/opendota"
	"github.com/playtrack/playtrack-data/internal/provider/overfast"
	"github.com/playtrack/playtrack-data/internal/provider/riot"
	"github.com/playtrack/playtrack-data/internal/provider/ubisoft"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Provider clients. Empty base URLs select the public endpoints; a
	// missing Riot key switches that client into its mock fallback.
	riotClient := riot.NewClient("", cfg.RiotAPIKey, cfg.RiotRequestsPerMinute, logger)
	dotaClient := opendota.NewClient(opendota.DefaultBaseURL, cfg.OpenDotaRequestsPerMinute, logger)
	owClient := overfast.NewClient(overfast.DefaultBaseURL, cfg.OverFastRequestsPerMinute, logger)
	r6Client := ubisoft.NewClient(ubisoft.DefaultBaseURL, cfg.UbisoftAppID, cfg.UbisoftRequestsPerMinute, logger)
	if err := r6Client.Authenticate(ctx, cfg.UbisoftSessionID); err != nil {
		logger.Warn("Ubisoft authentication failed, serving placeholder R6 data", "error", err)
	}

	// Initialize cache
	appCache := cache.New(ctx, cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(riotClient, dotaClient, owClient, r6Client, appCache, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting PlayTrack Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"riot_mock", riotClient.MockEnabled(),
			"r6_placeholder", r6Client.Placeholder())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
