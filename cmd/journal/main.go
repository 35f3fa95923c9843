package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"trade-journal-go/internal/config"
	"trade-journal-go/internal/database"
	"trade-journal-go/internal/logger"
	"trade-journal-go/internal/server"
	"trade-journal-go/internal/storage"
	"trade-journal-go/internal/storage/memory"
	"trade-journal-go/internal/storage/sqlite"
)

func main() {
	// Load application configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("Configuration loaded")

	// Initialize the storage backend
	store, err := buildStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Serve the REST API until the context is cancelled
	srv := server.New(log, &cfg, store)
	if err := srv.Run(ctx); err != nil {
		log.Fatal("Web server failed", zap.Error(err))
	}

	log.Info("Journal server has been shut down.")
}

// buildStore selects the storage adapter from configuration.
func buildStore(cfg config.Config, log *zap.Logger) (*storage.Store, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		db, err := database.NewDatabase(cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		log.Info("Using sqlite storage", zap.String("dsn", cfg.Storage.DSN))
		return sqlite.New(db)
	case "", "memory":
		log.Info("Using in-memory storage; data is lost on restart")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
