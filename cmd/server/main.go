package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"eventsapi/config"
	_ "eventsapi/docs"
	"eventsapi/internal/adapters/auth"
	httpdelivery "eventsapi/internal/delivery/http"
	"eventsapi/internal/delivery/http/controllers"
	"eventsapi/internal/domain"
	"eventsapi/internal/repository/migrate"
	"eventsapi/internal/repository/postgres"
	redisrepo "eventsapi/internal/repository/redis"
	"eventsapi/internal/repository/sqlite"
	"eventsapi/internal/services"
)

// store is the persistence selected by DB_DRIVER.
type store struct {
	events   domain.EventRepository
	accounts domain.AccountRepository
	ping     func(ctx context.Context) error
	close    func() error
}

// @title Events API
// @version 1.0
// @description Hypermedia REST API for creating, querying and updating events.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

// run wires the application and serves until ctx is cancelled. Every resource it
// opens is released before it returns.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("database %s: %w", cfg.DBDriver, err)
	}
	defer st.close()
	logger.Info("connected to database", "driver", cfg.DBDriver)

	checks := []controllers.HealthCheck{{Name: "database", Check: st.ping}}

	eventRepo := st.events
	if cfg.RedisURL != "" {
		client, err := redisrepo.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer client.Close()
		eventRepo = redisrepo.NewEventCache(eventRepo, client, cfg.CacheTTL, logger)
		checks = append(checks, controllers.HealthCheck{
			Name:  "cache",
			Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
		logger.Info("event cache enabled", "ttl", cfg.CacheTTL)
	}

	accountService := services.NewAccountService(st.accounts, auth.NewBcryptHasher(bcrypt.DefaultCost))
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		admin, err := accountService.EnsureAccount(ctx, cfg.AdminEmail, cfg.AdminPassword,
			[]domain.AccountRole{domain.AccountRoleAdmin, domain.AccountRoleUser})
		if err != nil {
			return fmt.Errorf("admin account: %w", err)
		}
		logger.Info("admin account ready", "account_id", admin.ID)
	}

	eventService := services.NewEventService(eventRepo, cfg.RequestTimeout)
	eventController := controllers.NewEventController(logger, eventService, cfg.BaseURL)
	indexController := controllers.NewIndexController(logger, cfg.BaseURL, cfg.RequestTimeout, checks...)

	mux := httpdelivery.NewRouter(eventController, indexController)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpdelivery.NewHandler(mux, logger, cfg.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DBUrl, logger)
		if err != nil {
			return nil, err
		}
		return &store{
			events:   sqlite.NewEventRepo(db, logger),
			accounts: sqlite.NewAccountRepo(db),
			ping:     db.PingContext,
			close:    db.Close,
		}, nil
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, fmt.Errorf("open: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping: %w", err)
		}
		if err := migrate.Run(ctx, sqlx.NewDb(db, migrate.DriverPostgres), logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return &store{
			events:   postgres.NewEventRepository(db),
			accounts: postgres.NewAccountRepository(db),
			ping:     db.PingContext,
			close:    db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
}
