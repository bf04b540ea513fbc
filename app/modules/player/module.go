package player

import (
	"context"
	"sync"

	playerservice "github.com/Black-And-White-Club/scorecard/app/modules/player/application"
	playerhandlers "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/handlers"
	playerdb "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the player module.
type Module struct {
	PlayerService playerservice.Service
	Repository    playerdb.Repository
	cancelFunc    context.CancelFunc
	observability *observability.Observability
}

// NewPlayerModule wires the player repository, service and HTTP routes.
func NewPlayerModule(
	ctx context.Context,
	obs *observability.Observability,
	metrics observability.ServiceMetrics,
	db *bun.DB,
	httpRouter chi.Router,
) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "player.NewPlayerModule initializing")

	repo := playerdb.NewRepository(db)
	service := playerservice.NewPlayerService(repo, logger, metrics, obs.Tracer("player"), db)

	if httpRouter != nil {
		playerhandlers.NewPlayerHandlers(service, logger).Register(httpRouter)
	}

	return &Module{
		PlayerService: service,
		Repository:    repo,
		observability: obs,
	}
}

// Run blocks until ctx is cancelled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting player module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Player module goroutine stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.observability.Logger.Info("Player module stopped")
	return nil
}
