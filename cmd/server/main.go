// Pokedex - Creature Data Browser and JSON API
// Copyright 2026 uriel2203
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/uriel2203/interns-pokedex

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

	"github.com/uriel2203/interns-pokedex/internal/api"
	"github.com/uriel2203/interns-pokedex/internal/config"
	"github.com/uriel2203/interns-pokedex/internal/logging"
	"github.com/uriel2203/interns-pokedex/internal/pokedex"
	"github.com/uriel2203/interns-pokedex/internal/supervisor"
	"github.com/uriel2203/interns-pokedex/internal/supervisor/services"
	"github.com/uriel2203/interns-pokedex/internal/upstream"
	"github.com/uriel2203/interns-pokedex/internal/views"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config is not available yet; the default logger is used.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("upstream", cfg.Upstream.BaseURL).
		Str("environment", cfg.Server.Environment).
		Bool("circuit_breaker", cfg.Upstream.CircuitBreaker).
		Int("max_concurrency", cfg.Aggregation.MaxConcurrency).
		Msg("Configuration loaded")

	handler, err := newHandler(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize HTTP handler")
	}

	if cfg.Server.Environment == "test" {
		logging.Info().Msg("Test environment, not starting HTTP server")
		return
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, shutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("url", fmt.Sprintf("http://localhost:%d", cfg.Server.Port)).Msg("Starting Pokedex")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newHandler wires client, service, views and router for cfg.
func newHandler(cfg *config.Config) (http.Handler, error) {
	var client upstream.ClientInterface = upstream.NewClient(upstream.Config{
		BaseURL:         cfg.Upstream.BaseURL,
		Timeout:         cfg.Upstream.Timeout,
		SearchScanLimit: cfg.Pagination.MaxSearchLimit,
	})
	if cfg.Upstream.CircuitBreaker {
		client = upstream.NewCircuitBreakerClient(client)
		logging.Info().Msg("Upstream circuit breaker enabled")
	}

	svc := pokedex.NewService(client, pokedex.Options{
		DefaultLimit:      cfg.Pagination.DefaultLimit,
		SearchScanLimit:   cfg.Pagination.MaxSearchLimit,
		SearchResultLimit: cfg.Pagination.SearchResultLimit,
		MaxConcurrency:    cfg.Aggregation.MaxConcurrency,
	})

	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Server.CORSOrigins

	router := api.NewRouter(api.NewHandler(svc, renderer), mwConfig)
	return router.Setup(), nil
}
