// Package app bootstraps the application: configuration, logging, database
// pool, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pactwatch/pactwatch-backend/internal/adapter/postgres"
	contractrepo "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/contract"
	eventrepo "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/event"
	reminderrepo "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/reminder"
	termrepo "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/term"
	tokenrepo "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/token"
	userrepo "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/user"
	jwtauth "github.com/pactwatch/pactwatch-backend/internal/auth"
	"github.com/pactwatch/pactwatch-backend/internal/config"
	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/internal/registry"
	authsvc "github.com/pactwatch/pactwatch-backend/internal/service/auth"
	contractsvc "github.com/pactwatch/pactwatch-backend/internal/service/contracts"
	eventsvc "github.com/pactwatch/pactwatch-backend/internal/service/events"
	remindersvc "github.com/pactwatch/pactwatch-backend/internal/service/reminders"
	termsvc "github.com/pactwatch/pactwatch-backend/internal/service/terms"
	"github.com/pactwatch/pactwatch-backend/internal/transport/middleware"
	"github.com/pactwatch/pactwatch-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is canceled, then
// shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	contracts := contractrepo.New(pool)
	terms := termrepo.New(pool)
	events := eventrepo.New(pool)
	reminders := reminderrepo.New(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	reg := registry.New(extraKeySpecs(cfg.Registry)...)
	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwt, cfg.Auth)
	contractService := contractsvc.NewService(logger, contracts)
	termService := termsvc.NewService(logger, terms, events, contracts, reg, tx)
	eventService := eventsvc.NewService(logger, events, contracts)
	reminderService := remindersvc.NewService(logger, reminders, events, contracts)

	rl := middleware.NewRateLimiter(cfg.Limits.CleanupInterval)
	defer rl.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Auth:      rest.NewAuthHandler(authService, logger),
		Contracts: rest.NewContractHandler(contractService, logger),
		Terms:     rest.NewTermHandler(termService, logger),
		Events:    rest.NewEventHandler(eventService, logger),
		Reminders: rest.NewReminderHandler(reminderService, eventService, logger),
		Views:     rest.NewViewHandler(eventService, logger),
		Catalog:   rest.NewCatalogHandler(reg),
		Admin:     rest.NewAdminHandler(authService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),

		TokenValidator: authService,
		RateLimiter:    rl,
		Log:            logger,
		CORS:           cfg.CORS,
		Limits:         cfg.Limits,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// extraKeySpecs converts configured extra date keys into catalog entries.
func extraKeySpecs(cfg config.RegistryConfig) []registry.KeySpec {
	specs := make([]registry.KeySpec, 0, len(cfg.ExtraDateKeys))
	for _, k := range cfg.ExtraDateKeys {
		specs = append(specs, registry.KeySpec{
			Key:       k.Key,
			Name:      strings.ReplaceAll(k.Key, "_", " "),
			ValueType: domain.ValueTypeDate,
			Event:     &registry.EventTemplate{EventType: domain.EventType(k.EventType)},
		})
	}
	return specs
}
