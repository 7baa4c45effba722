// Package main is the entry point for the BlockPress server. It loads
// configuration, opens the file-backed stores, connects to Valkey, sets
// up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blockpress/internal/blocks"
	"blockpress/internal/cache"
	"blockpress/internal/config"
	"blockpress/internal/editor"
	"blockpress/internal/engine"
	"blockpress/internal/handlers"
	"blockpress/internal/render"
	"blockpress/internal/router"
	"blockpress/internal/session"
	"blockpress/internal/store"
)

func main() {
	// Structured logger — outputs key-value text lines.
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
		"data_dir", cfg.DataDir,
	)

	// Open the file-backed stores.
	localeStore, err := store.NewLocaleStore(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open locale store", "error", err)
		os.Exit(1)
	}
	pageStore, err := store.NewPageStore(cfg.DataDir, localeStore)
	if err != nil {
		slog.Error("failed to open page store", "error", err)
		os.Exit(1)
	}
	userStore, err := store.NewUserStore(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open user store", "error", err)
		os.Exit(1)
	}

	// Seed the initial admin user (no-op when users already exist).
	if err := userStore.Seed(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize the HTML template renderer for admin pages.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Register the built-in block set and initialize the block engine.
	registry := blocks.NewRegistry()
	registry.Populate(engine.Builtin())
	eng := engine.New(registry)

	// Initialize the L2 page cache (full-page HTML in Valkey).
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	ed := editor.New(registry, pageStore)

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(renderer, registry, pageStore, localeStore, userStore)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	apiHandlers := handlers.NewAPI(pageStore, localeStore, ed, pageCache)
	publicHandlers := handlers.NewPublic(eng, pageStore, pageCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, adminHandlers, authHandlers, apiHandlers, publicHandlers, secureCookies)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
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

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
