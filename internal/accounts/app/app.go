package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/tuskhq/gatehouse/internal/accounts/http"
	"github.com/tuskhq/gatehouse/internal/accounts/service"
	"github.com/tuskhq/gatehouse/internal/accounts/store"
	"github.com/tuskhq/gatehouse/internal/accounts/store/drivers/sqlite"
	"github.com/tuskhq/gatehouse/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the accounts service together: store, services, HTTP
// server and the background session sweeper.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	accountService      *service.AccountService
	sessionService      *service.SessionService
	authService         *service.AuthService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "gatehouse",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("accounts service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down accounts service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("accounts service stopped")
	return nil
}

// initDatabase opens the SQLite database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.accountService = &service.AccountService{Store: app.db}
	app.sessionService = &service.SessionService{
		Store: app.db,
		TTL:   app.cfg.SessionTTL,
	}
	app.authService = &service.AuthService{
		Accounts: app.accountService,
		Sessions: app.sessionService,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(BuildVersion, app.db, app.logger)
	app.router.AccountService = app.accountService
	app.router.AuthService = app.authService
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.router,
	}
}
