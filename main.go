package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mystore/storefront/internal/api"
	"github.com/mystore/storefront/internal/cart"
	"github.com/mystore/storefront/internal/handler"
	"github.com/mystore/storefront/internal/service"
	"github.com/mystore/storefront/internal/session"
)

func main() {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	port := envOrDefault("PORT", "8080")

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		slog.Error("API_BASE_URL environment variable is required")
		os.Exit(1)
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		slog.Error("SESSION_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(sessionSecret) < 32 {
		slog.Error("SESSION_SECRET must be at least 32 characters")
		os.Exit(1)
	}

	// Default to secure cookies; disable only for local development.
	cookieSecure := os.Getenv("COOKIE_SECURE") != "false"

	apiTimeout := 10 * time.Second
	if v := os.Getenv("API_TIMEOUT_SECONDS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("invalid API_TIMEOUT_SECONDS", "error", err)
			os.Exit(1)
		}
		if parsed < 1 || parsed > 120 {
			slog.Error("API_TIMEOUT_SECONDS must be between 1 and 120", "value", parsed)
			os.Exit(1)
		}
		apiTimeout = time.Duration(parsed) * time.Second
	}

	client, err := api.New(apiBaseURL, apiTimeout)
	if err != nil {
		slog.Error("invalid API_BASE_URL", "error", err)
		os.Exit(1)
	}

	sessions := session.NewStore([]byte(sessionSecret), cookieSecure)
	carts := cart.NewStore([]byte(sessionSecret), cookieSecure)

	catalogService := service.NewCatalogService(client)
	accountService := service.NewAccountService(client)
	orderService := service.NewOrderService(client)

	// 1 auth attempt per 2 seconds per client, bursting to 5.
	limiter := service.NewTokenBucket(0.5, 5)
	defer limiter.Stop()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, sessions, carts, accountService, catalogService, orderService, limiter)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(handler.RequestID(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "api", apiBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
