// Package server initializes and runs the profile backend: it opens the
// database, applies migrations, wires the services and serves the HTTP API
// until the process is told to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/interviewprep/internal/logging"
	"github.com/dmitrijs2005/interviewprep/internal/server/config"
	"github.com/dmitrijs2005/interviewprep/internal/server/httpapi"
	"github.com/dmitrijs2005/interviewprep/internal/server/models"
	"github.com/dmitrijs2005/interviewprep/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/interviewprep/internal/server/services"
	"github.com/dmitrijs2005/interviewprep/internal/server/storage"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	userService    *services.UserService
	profileService *services.ProfileService
}

// NewApp connects to PostgreSQL and the image bucket described by c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	st, err := storage.NewS3ImageStorage(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	return newApp(c, logger, db, repomanager.NewPostgresRepositoryManager(), st), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager, st services.ImageStorage) *App {
	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		repomanager:    rm,
		userService:    services.NewUserService(db, rm, c),
		profileService: services.NewProfileService(db, rm, st, logger, c.MaxImageSize),
	}
}

func (app *App) Migrate(ctx context.Context) error {
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Handler returns the HTTP API wired to the app's services.
func (app *App) Handler() *httpapi.Handler {
	return httpapi.NewHandler(app.profileService, app.userService, app.db, app.logger, app.config.MaxImageSize)
}

// Run migrates the schema and serves HTTP until ctx ends or SIGINT, SIGTERM
// or SIGQUIT arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	if err := app.Migrate(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := httpapi.NewServer(app.config.HTTPAddr, app.Handler().Router(), app.logger, app.config.ShutdownTimeout)
		return s.Run(gctx)
	})

	err := g.Wait()
	app.logger.Info(ctx, "App stopped")
	return err
}

// Provision creates (or finds) a user by email and mints a bearer token for
// them, for seeding environments without a sign-in service.
func (app *App) Provision(ctx context.Context, name, email string) (*models.User, string, error) {
	if err := app.Migrate(ctx); err != nil {
		return nil, "", err
	}
	return app.userService.Provision(ctx, name, email)
}

func (app *App) Close() error {
	return app.db.Close()
}
