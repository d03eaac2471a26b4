package app

import (
	"context"
	"log/slog"

	"github.com/avolkov-dev/forum-backend/internal/adapter/postgres"
	auditrepo "github.com/avolkov-dev/forum-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/avolkov-dev/forum-backend/internal/adapter/postgres/category"
	topicrepo "github.com/avolkov-dev/forum-backend/internal/adapter/postgres/topic"
	userrepo "github.com/avolkov-dev/forum-backend/internal/adapter/postgres/user"
	"github.com/avolkov-dev/forum-backend/internal/auth"
	"github.com/avolkov-dev/forum-backend/internal/config"
	"github.com/avolkov-dev/forum-backend/internal/service/category"
	"github.com/avolkov-dev/forum-backend/internal/service/topic"
	"github.com/avolkov-dev/forum-backend/pkg/clock"
)

// App bundles the assembled core services for a transport layer to consume.
// The HTTP boundary (routing, rendering, sessions) lives outside this module
// and receives an App after Bootstrap.
type App struct {
	Config     *config.Config
	Log        *slog.Logger
	Topics     *topic.Service
	Categories *category.Resolver
	Identity   *auth.Resolver

	pool closer
}

type closer interface {
	Close()
}

// Bootstrap loads configuration, initializes the logger, connects to the
// database, and wires the services with their dependencies.
func Bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting forum backend",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	tx := postgres.NewTxManager(pool)
	topics := topicrepo.New(pool)
	categories := categoryrepo.New(pool)
	users := userrepo.New(pool)
	audit := auditrepo.New(pool)

	resolver := category.NewResolver(logger, categories)
	identity := auth.NewResolver(users)

	topicSvc := topic.NewService(
		logger,
		topics,
		resolver,
		audit,
		tx,
		clock.System{},
		topic.Limits{
			MaxTitleLength:       cfg.Forum.MaxTitleLength,
			MaxDescriptionLength: cfg.Forum.MaxDescriptionLength,
		},
	)

	return &App{
		Config:     cfg,
		Log:        logger,
		Topics:     topicSvc,
		Categories: resolver,
		Identity:   identity,
		pool:       pool,
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
