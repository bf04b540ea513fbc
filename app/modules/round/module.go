package round

import (
	"context"
	"sync"

	coursedb "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories"
	playerdb "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/repositories"
	roundservice "github.com/Black-And-White-Club/scorecard/app/modules/round/application"
	"github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/adapters"
	roundhandlers "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/handlers"
	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	roundrouter "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/router"
	roundtime "github.com/Black-And-White-Club/scorecard/app/modules/round/time_utils"
	"github.com/Black-And-White-Club/scorecard/app/shared/eventbus"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the round module.
type Module struct {
	EventBus      eventbus.EventBus
	RoundService  roundservice.Service
	RoundRouter   *roundrouter.RoundRouter
	cancelFunc    context.CancelFunc
	observability *observability.Observability
}

// NewRoundModule wires the round repository, service, HTTP routes and event
// subscribers. players and courses are the other modules' repositories.
func NewRoundModule(
	ctx context.Context,
	obs *observability.Observability,
	metrics observability.ServiceMetrics,
	db *bun.DB,
	eventBus eventbus.EventBus,
	router *message.Router,
	players playerdb.Repository,
	courses coursedb.Repository,
	httpRouter chi.Router,
) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "round.NewRoundModule initializing")

	service := roundservice.NewRoundService(
		rounddb.NewRepository(db),
		adapters.NewPlayerLookupAdapter(players),
		adapters.NewCourseLookupAdapter(courses),
		eventBus,
		roundtime.NewDateParser(nil),
		logger,
		metrics,
		obs.Tracer("round"),
		db,
	)

	if httpRouter != nil {
		roundhandlers.NewRoundHandlers(service, logger).Register(httpRouter)
	}

	var roundRouter *roundrouter.RoundRouter
	if router != nil && eventBus != nil {
		roundRouter = roundrouter.NewRoundRouter(
			logger,
			router,
			eventBus,
			roundrouter.NewRoundMetrics(obs.Registry),
			obs.Registry,
		)
		roundRouter.Configure()
	}

	return &Module{
		EventBus:      eventBus,
		RoundService:  service,
		RoundRouter:   roundRouter,
		observability: obs,
	}
}

// Run blocks until ctx is cancelled. The shared message router is run by the
// caller.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting round module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Round module goroutine stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.observability.Logger.Info("Round module stopped")
	return nil
}
