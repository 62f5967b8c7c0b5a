// Package bootstrap wires the site together: configuration, logging, the
// content store, the page cache, statistics and the HTTP server.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/api"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
	"github.com/Londondannyboy/thechief-quest/internal/render"
	"github.com/Londondannyboy/thechief-quest/internal/stats"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// Start initializes and runs the site until a shutdown signal.
func Start() error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	log, err := CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting TheChief.quest",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.String("backend", cfg.Store.Backend),
		logger.String("base_url", cfg.Service.BaseURL),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Phase 2: Metrics and content store
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	siteMetrics := metrics.New(registry)

	backend, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	contentStore := store.NewInstrumented(backend, siteMetrics)

	// Phase 3: Page cache (optional)
	pageCache, err := SetupCache(ctx, cfg, siteMetrics, log)
	if err != nil {
		return fmt.Errorf("setup page cache: %w", err)
	}
	if pageCache != nil {
		defer func() { _ = pageCache.Close() }()
	}

	// Phase 4: Statistics refresher
	refresher, err := stats.NewRefresher(stats.NewCollector(contentStore), cfg.Stats.Schedule, log)
	if err != nil {
		return fmt.Errorf("stats refresher: %w", err)
	}
	refresher.Start(ctx)
	defer refresher.Stop()

	// Phase 5: HTTP server
	renderer, err := render.New(cfg.Service.BaseURL)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	server := SetupHTTPServer(cfg, ServerDeps{
		Handler:  api.NewHandler(contentStore, renderer, refresher, cfg.Service.BaseURL, siteMetrics, log),
		Pinger:   backend,
		Cache:    pageCache,
		Registry: registry,
		Logger:   log,
	})

	if runErr := server.RunWithGracefulShutdown(ctx); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("TheChief.quest stopped")
	return nil
}
