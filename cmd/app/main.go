package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coinwheel/internal/config"
	"coinwheel/internal/db"
	"coinwheel/internal/ledger"
	"coinwheel/internal/logger"
	"coinwheel/internal/roulette"
	"coinwheel/internal/server"
	"coinwheel/internal/stats"

	"github.com/redis/go-redis/v9"
)

func main() {
	logger.Init()
	logger.Info("Starting coinwheel")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	var (
		store ledger.Store
		repo  *ledger.Repository
	)
	if cfg.Persistence == "postgres" {
		logger.Info("Connecting to database...")
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := db.RunMigrations(database, "migrations"); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")

		repo = ledger.NewRepository(database)
		store = repo
	} else {
		logger.Info("Running with in-memory balances only")
	}

	led := ledger.New(store, cfg.StartingBalance)
	betService := roulette.NewService(led, roulette.NewSpinner())
	tracker := stats.NewTracker()

	var board *stats.Leaderboard
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		board = stats.NewLeaderboard(rdb)
		logger.Info("Leaderboard enabled", "redis_addr", cfg.RedisAddr)
	}

	srv := server.New(cfg, betService, led, repo, tracker, board)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
