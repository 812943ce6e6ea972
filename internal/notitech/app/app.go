package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/notitech/internal/notitech/http"
	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/cryptox"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/jwtx"
	"github.com/aussiebroadwan/notitech/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// BuildVersion is overridden at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application wires the notitech service and its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       *Storage
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	registry *prometheus.Registry

	authService         *service.AuthService
	recoveryService     *service.RecoveryService
	securityService     *service.SecurityService
	adminService        *service.AdminService
	noteService         *service.NoteService
	reminderService     *service.ReminderService
	statisticsService   *service.StatisticsService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "notitech",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initKeys(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}
	app.initMetrics()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("notitech starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown drains the HTTP server, then stops background work and closes
// the stores.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down notitech...")

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

	app.logger.Info("notitech stopped")
	return nil
}

// initKeys prepares the HS256 session key. Without JWT_SECRET (dev only)
// a random key is generated, so sessions do not survive a restart.
func (app *Application) initKeys() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(minSecretLen)
		if err != nil {
			return fmt.Errorf("failed to generate session key: %w", err)
		}
		secret = generated
		app.logger.Warn("JWT_SECRET not set, using an ephemeral session key")
	}

	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		return fmt.Errorf("failed to initialize session signer: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifierHS256([]byte(secret), jwtx.VerifyOptions{
		Issuer: app.cfg.JWTIssuer,
		Leeway: 30 * time.Second,
	})
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStorage(ctx, app.cfg, app.logger)
	if err != nil {
		return err
	}
	app.db = db
	return nil
}

func (app *Application) initMetrics() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func (app *Application) initServices() {
	metrics := service.NewMetrics(app.registry)

	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   app.signer,
		Issuer:   app.cfg.JWTIssuer,
		TokenTTL: app.cfg.TokenTTL,
		Metrics:  metrics,
	}
	app.recoveryService = &service.RecoveryService{
		Store:    app.db,
		Notifier: service.LogNotifier{},
		CodeTTL:  app.cfg.ResetCodeTTL,
		Metrics:  metrics,
	}
	app.securityService = &service.SecurityService{Store: app.db, Metrics: metrics}
	app.adminService = &service.AdminService{Store: app.db, Metrics: metrics}
	app.noteService = &service.NoteService{Store: app.db}
	app.reminderService = &service.ReminderService{Store: app.db}
	app.statisticsService = &service.StatisticsService{Store: app.db, Auth: app.authService}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AdminToken = app.cfg.AdminToken
	router.ExposeResetCode = app.cfg.ExposeResetCode
	if app.cfg.MetricsEnabled {
		router.Metrics = httpx.NewHTTPMetrics(app.registry)
		router.Gatherer = app.registry
	}

	router.AuthService = app.authService
	router.RecoveryService = app.recoveryService
	router.SecurityService = app.securityService
	router.AdminService = app.adminService
	router.NoteService = app.noteService
	router.ReminderService = app.reminderService
	router.StatisticsService = app.statisticsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
