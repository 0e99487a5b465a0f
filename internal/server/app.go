// Package server initializes and runs the API server: storage backend
// selection, migrations, service wiring and graceful shutdown.
package server

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

	"imagevault/internal/auth"
	"imagevault/internal/config"
	"imagevault/internal/httpapi"
	"imagevault/internal/logging"
	"imagevault/internal/repositories/repomanager"
	"imagevault/internal/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	httpSrv *http.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := newRepositoryManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		repos.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.TokenTTL)

	usersSvc := services.NewUserService(repos.Users(), hasher, logger)
	authSvc := services.NewAuthService(usersSvc, hasher, tokens, logger)
	uploadsSvc := services.NewUploadService(repos.Uploads(), cfg, logger)
	trackingSvc := services.NewTrackingService(repos.AccessLogs(), logger)

	srv := httpapi.NewServer(cfg, logger, authSvc, usersSvc, uploadsSvc, trackingSvc)

	return &App{
		config: cfg,
		logger: logger,
		repos:  repos,
		httpSrv: &http.Server{
			Addr:    cfg.Addr,
			Handler: srv.Routes(),
		},
	}, nil
}

// newRepositoryManager selects the storage backend. An empty DSN means the
// in-memory store, which loses everything on restart.
func newRepositoryManager(ctx context.Context, cfg *config.Config) (repomanager.RepositoryManager, error) {
	if cfg.DatabaseDSN == "" {
		return repomanager.NewMemoryRepositoryManager(), nil
	}
	return repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until the context is cancelled or a termination signal
// arrives, then drains in-flight requests and closes the storage backend.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	app.logger.Info(ctx, "starting server",
		"addr", app.config.Addr, "environment", app.config.Environment)

	errCh := make(chan error, 1)
	go func() {
		if err := app.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		app.repos.Close()
		return err
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := app.httpSrv.Shutdown(shutdownCtx)
	if closeErr := app.repos.Close(); err == nil {
		err = closeErr
	}
	return err
}
