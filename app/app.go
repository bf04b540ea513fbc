package app

import (
	"context"
	"fmt"

	"github.com/Black-And-White-Club/scorecard/app/modules/course"
	"github.com/Black-And-White-Club/scorecard/app/modules/player"
	"github.com/Black-And-White-Club/scorecard/app/modules/round"
	"github.com/Black-And-White-Club/scorecard/app/shared/database"
	"github.com/Black-And-White-Club/scorecard/app/shared/eventbus"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/Black-And-White-Club/scorecard/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Version is set at build time.
var Version = "dev"

// Modules holds every application module.
type Modules struct {
	PlayerModule *player.Module
	CourseModule *course.Module
	RoundModule  *round.Module
}

// App wires the scorecard service together.
type App struct {
	Config          *config.Config
	Observability   *observability.Observability
	DB              *bun.DB
	EventBus        eventbus.EventBus
	WatermillRouter *message.Router
	Modules         Modules

	router chi.Router
}

// NewApp connects to the database and builds every module.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.Init(ctx, observability.Config{
		ServiceName:    "scorecard",
		Environment:    cfg.Observability.Environment,
		Version:        Version,
		LogLevel:       cfg.Observability.LogLevel,
		MetricsAddress: cfg.Observability.MetricsAddress,
	})

	db, err := database.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app, err := newApp(ctx, cfg, obs, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.Config, obs *observability.Observability, db *bun.DB) (*App, error) {
	logger := obs.Logger

	bus := eventbus.New(logger)
	watermillRouter, err := eventbus.NewRouter(logger)
	if err != nil {
		return nil, err
	}

	metrics := observability.NewServiceMetrics(obs.Registry)
	root, api := newHTTPRouter(cfg.HTTP, obs, db)

	playerModule := player.NewPlayerModule(ctx, obs, metrics, db, api)
	courseModule := course.NewCourseModule(ctx, obs, metrics, db, api)
	roundModule := round.NewRoundModule(ctx, obs, metrics, db, bus, watermillRouter,
		playerModule.Repository, courseModule.Repository, api)

	return &App{
		Config:          cfg,
		Observability:   obs,
		DB:              db,
		EventBus:        bus,
		WatermillRouter: watermillRouter,
		Modules: Modules{
			PlayerModule: playerModule,
			CourseModule: courseModule,
			RoundModule:  roundModule,
		},
		router: root,
	}, nil
}

// Router returns the root HTTP handler.
func (app *App) Router() chi.Router {
	return app.router
}
