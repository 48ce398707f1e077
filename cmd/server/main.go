package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/summitops/regdesk/internal/config"
	"github.com/summitops/regdesk/internal/core"
	_ "github.com/summitops/regdesk/internal/core/profiles" // Register all profiles
	"github.com/summitops/regdesk/internal/logging"
	"github.com/summitops/regdesk/internal/source"
	"github.com/summitops/regdesk/internal/store"
	"github.com/summitops/regdesk/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"sheet_backend", cfg.Sheet.Backend,
		"store_backend", cfg.Store.Backend,
		"profile", cfg.Lookup.Profile,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Wire the table source the engine re-reads per query
	src, err := source.New(cfg.Sheet)
	if err != nil {
		slog.Error("failed to create table source", "error", err)
		os.Exit(1)
	}

	// Wire the attachment store
	st, err := store.New(cfg.Store)
	if err != nil {
		slog.Error("failed to create attachment store", "error", err)
		os.Exit(1)
	}

	// Create the lookup service against the configured profile
	service, err := core.NewService(src, cfg.Lookup.Profile,
		cfg.Lookup.FuzzyThreshold, cfg.Lookup.SuggestMinLength)
	if err != nil {
		slog.Error("failed to create service",
			"error", err,
			"known_profiles", core.ProfileNames(),
		)
		os.Exit(1)
	}

	slog.Info("profiles registered", "profiles", core.ProfileNames())

	// Create server with config
	server := web.NewServer(service, st, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
