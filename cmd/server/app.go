package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/blackbird-crm/crm-api/internal/config"
	"github.com/blackbird-crm/crm-api/internal/platform/postgres"
	"github.com/blackbird-crm/crm-api/internal/service"
	"github.com/blackbird-crm/crm-api/internal/service/auth"
	"github.com/blackbird-crm/crm-api/internal/store"
)

// application holds all shared dependencies so they are wired once and
// cleaned up together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces, so tests can substitute fakes)
	userStore        store.UserStore
	clientStore      store.ClientStore
	projectStore     store.ProjectStore
	commentStore     store.CommentStore
	transactionStore store.TransactionStore

	// Services
	jwtService         auth.JWTService
	passwordVerifier   auth.PasswordVerifier
	clientService      service.ClientService
	projectService     service.ProjectService
	commentService     service.CommentService
	transactionService service.TransactionService
}

// newApplication wires stores and services from the core dependencies.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, bcrypt.DefaultCost, logger)
	app.clientStore = postgres.NewPostgresClientStore(db, logger)
	app.projectStore = postgres.NewPostgresProjectStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)
	app.transactionStore = postgres.NewPostgresTransactionStore(db, logger)

	app.clientService, err = service.NewClientService(
		app.clientStore,
		app.projectStore,
		app.commentStore,
		app.transactionStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client service: %w", err)
	}

	app.projectService, err = service.NewProjectService(app.projectStore, app.clientService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	app.commentService, err = service.NewCommentService(
		app.commentStore,
		app.clientService,
		app.projectService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	app.transactionService, err = service.NewTransactionService(
		app.transactionStore,
		app.clientService,
		app.projectService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
