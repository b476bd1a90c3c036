// Package server initializes and runs the card rendering service.
// It opens the database, runs migrations, selects the content backend,
// and starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brandstack/cardlink/internal/logging"
	"github.com/brandstack/cardlink/internal/server/config"
	"github.com/brandstack/cardlink/internal/server/content"
	"github.com/brandstack/cardlink/internal/server/httpapi"
	"github.com/brandstack/cardlink/internal/server/repositories/repomanager"
	"github.com/brandstack/cardlink/internal/server/services"
	"github.com/brandstack/cardlink/internal/vcard"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	src, err := newContentSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("content source init error: %w", err)
	}

	enc := vcard.NewEncoder(&http.Client{Timeout: 10 * time.Second}, logger)

	cards := services.NewCardService(db, rm, src, enc, logger)
	admin := services.NewAdminService(cfg)

	handler := httpapi.NewRouter(logger, cards, admin)

	return &App{config: cfg, logger: logger, db: db, handler: handler}, nil
}

func newContentSource(ctx context.Context, cfg *config.Config) (content.Source, error) {
	switch cfg.ContentSource {
	case config.ContentSourceS3:
		return content.NewS3Source(ctx, content.S3Options{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	case config.ContentSourceGitHub:
		client := &http.Client{Timeout: 10 * time.Second}
		return content.NewGitHubSource(cfg.GitHubOwner, cfg.GitHubRepo, cfg.GitHubBranch, cfg.GitHubToken, client), nil
	default:
		return nil, fmt.Errorf("unknown content source %q", cfg.ContentSource)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: app.handler,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
