// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reelmatch/reelmatch/internal/api"
	"github.com/reelmatch/reelmatch/internal/config"
	"github.com/reelmatch/reelmatch/internal/logging"
	"github.com/reelmatch/reelmatch/internal/recommend"
	"github.com/reelmatch/reelmatch/internal/supervisor"
	"github.com/reelmatch/reelmatch/internal/supervisor/services"
	"github.com/reelmatch/reelmatch/internal/tmdb"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		// Config not yet available; the default logger reports it.
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(cfg.LoggingSettings())
	logging.Info().Msg("Starting Reelmatch with supervisor tree")

	logging.Info().
		Str("movies_path", cfg.Data.MoviesPath).
		Str("credits_path", cfg.Data.CreditsPath).
		Str("kernel", cfg.Engine.Kernel).
		Bool("tmdb_enabled", cfg.TMDB.Enabled).
		Msg("Configuration loaded")

	engine := recommend.NewEngine(cfg.RecommendConfig())

	var enricher tmdb.Enricher = tmdb.Disabled{}
	if cfg.TMDB.Enabled {
		enricher = tmdb.NewClient(cfg.TMDBClientConfig())
		logging.Info().Str("base_url", cfg.TMDB.BaseURL).Msg("TMDB enrichment enabled")
	} else {
		logging.Info().Msg("TMDB enrichment disabled - posters and details report absent")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(engine, enricher)
	router := api.NewRouter(handler, api.NewChiMiddlewareConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}

	engineSvc := services.NewEngineService(engine, cfg.Data.MoviesPath, cfg.Data.CreditsPath)
	tree.AddEngineService(engineSvc)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	// The engine service terminates the tree when the datasets cannot be
	// loaded; that is the only way to get here without a signal.
	if ctx.Err() == nil {
		select {
		case <-engineSvc.Done():
		default:
			logging.Error().Msg("Similarity engine was never built")
			return 1
		}
	}

	logging.Info().Msg("Server stopped")
	return 0
}
