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

	"go.uber.org/zap"

	"bank_portal_echo/internal/cases"
	"bank_portal_echo/internal/chat"
	"bank_portal_echo/internal/config"
	"bank_portal_echo/internal/logging"
	"bank_portal_echo/internal/routes"
	"bank_portal_echo/internal/server"
	"bank_portal_echo/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, foundDotenv, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if !foundDotenv {
		log.Info("No .env file found, using system environment")
	}

	widget := chat.Initialize(cfg.ChatWidgetURL)
	if !widget.Enabled() {
		log.Warn("CHAT_WIDGET_URL missing or not an absolute http(s) URL, chat widget disabled")
	}

	caseService, cleanup, err := initCases(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	e := server.New(server.Deps{
		Routes:    routes.Default(),
		Chat:      widget,
		Cases:     caseService,
		Log:       log,
		StaticDir: "web/static",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// initCases wires support case intake when a database is configured.
// It returns a nil service when the feature is off.
func initCases(cfg config.Config, log *zap.Logger) (*cases.Service, func(), error) {
	noop := func() {}
	if !cfg.CasesEnabled() {
		log.Warn("DATABASE_URL not set, support case intake disabled")
		return nil, noop, nil
	}
	if err := cfg.ValidateCases(); err != nil {
		return nil, noop, err
	}

	db, err := services.InitDB(cfg.DatabaseURL, log)
	if err != nil {
		return nil, noop, fmt.Errorf("connect to database: %w", err)
	}
	if err := services.AutoMigrate(db, log); err != nil {
		return nil, noop, fmt.Errorf("run database migrations: %w", err)
	}

	var throttle cases.Throttle
	cleanup := noop
	if cfg.RedisURL != "" {
		cache, err := services.NewRedisCache(cfg.RedisURL, log)
		if err != nil {
			log.Warn("Redis unavailable, case throttling disabled", zap.Error(err))
		} else {
			throttle = cases.NewRedisThrottle(cache, cfg.CaseThrottlePerHour)
			cleanup = func() { _ = cache.Close() }
		}
	}

	settings := cases.Settings{
		DomainID:   cfg.CaseDomainID,
		TemplateID: cfg.CaseTemplateID,
		CustomerID: cfg.CaseCustomerID,
		AgentID:    cfg.CaseAgentID,
	}
	return cases.NewService(cases.NewGormStore(db), throttle, settings, log), cleanup, nil
}
