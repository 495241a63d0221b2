// Command api is the Moneyball server: REST backend plus the server-rendered
// frontend under /web.
//
// Usage:
//
//	moneyball-api
//	API_PORT=3001 moneyball-api

// @title Moneyball API
// @version 1.0.0
// @description Baseball statistics web application: accounts, favorite teams/players, and cached passthrough of the public MLB Stats API.
// @host localhost:3001
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @license.name MIT
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

	"github.com/albapepper/moneyball/internal/api"
	"github.com/albapepper/moneyball/internal/cache"
	"github.com/albapepper/moneyball/internal/config"
	"github.com/albapepper/moneyball/internal/db"
	"github.com/albapepper/moneyball/internal/mlb"
	"github.com/albapepper/moneyball/internal/store/postgres"
	"github.com/albapepper/moneyball/internal/token"
	"github.com/albapepper/moneyball/internal/user"

	_ "github.com/albapepper/moneyball/docs" // swagger docs
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

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Wire services
	users := user.NewService(postgres.New(pool), user.NewBcryptHasher(cfg.BcryptCost))
	issuer := token.NewIssuer(cfg.SecretKey)
	mlbClient := mlb.NewClient(cfg.MLBAPIBaseURL, cfg.MLBRequestsPerMinute, logger)

	// Create router
	router := api.NewRouter(users, issuer, mlbClient, appCache, cfg, pool)

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
		logger.Info("Starting Moneyball API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
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
