package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bank_portal_echo/internal/config"
	"bank_portal_echo/internal/logging"
	"bank_portal_echo/internal/services"
	"bank_portal_echo/internal/tasks"
)

const pollInterval = 5 * time.Minute

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := services.InitDB(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := services.AutoMigrate(db, log); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	tasks.DefineTasks(log)
	runner := tasks.NewRunner(db, tasks.GlobalRegistry, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Worker started", zap.Duration("interval", pollInterval))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	// Run once at startup so new cases are picked up without waiting a full tick.
	runner.ProcessDue(ctx, time.Now())

	for {
		select {
		case <-ticker.C:
			runner.ProcessDue(ctx, time.Now())
		case <-ctx.Done():
			log.Info("Shutting down worker")
			return
		}
	}
}
