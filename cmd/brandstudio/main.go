// Package main is the entry point for the Brand Studio server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandstudio/internal/assets"
	"brandstudio/internal/brightness"
	"brandstudio/internal/cache"
	"brandstudio/internal/catalog"
	"brandstudio/internal/config"
	"brandstudio/internal/database"
	"brandstudio/internal/export"
	"brandstudio/internal/handlers"
	"brandstudio/internal/layout"
	"brandstudio/internal/middleware"
	"brandstudio/internal/profanity"
	"brandstudio/internal/raster"
	"brandstudio/internal/router"
	"brandstudio/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL (recent-work history).
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (asset byte cache — optional, renders work
	// without it, just slower on repeat fetches).
	var assetCache *cache.AssetCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable — asset caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		assetCache = cache.NewAssetCache(valkeyClient, cache.DefaultAssetTTL)
	}

	// Built-in template catalog.
	templates, err := catalog.Default()
	if err != nil {
		slog.Error("failed to load template catalog", "error", err)
		os.Exit(1)
	}

	// Rendering core: asset loader, brightness classifier, layout
	// resolver, rasterizer, export pipeline.
	loader := assets.NewLoader(nil, assetCache, cfg.AssetFetchTimeout)
	classifier := brightness.New(loader, brightness.DefaultCacheSize)
	resolver := layout.NewResolver(classifier, profanity.NewDefault())

	renderer, err := raster.NewRenderer(loader)
	if err != nil {
		slog.Error("failed to initialize renderer", "error", err)
		os.Exit(1)
	}
	pipeline := export.New(renderer)
	preloader := assets.NewPreloader(loader, cfg.PreloadBatchSize, assets.DefaultBatchDelay)

	workStore := store.NewWorkStore(db)

	// baseCtx scopes background work (asset preloads) to the process;
	// cancelled once shutdown begins.
	baseCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Create handler groups with their dependencies.
	catalogHandlers := handlers.NewCatalog(templates)
	studioHandlers := handlers.NewStudio(templates, resolver, renderer, pipeline, preloader, baseCtx)
	workHandlers := handlers.NewWorks(workStore, templates, resolver, pipeline)

	// Per-IP rate limiting on the API surface.
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(limiter, catalogHandlers, studioHandlers, workHandlers)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate exports that rasterize at 2x and
	// fetch cold assets over the network.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Stop background preloads before draining requests.
	stopBackground()

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
