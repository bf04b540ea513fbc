package course

import (
	"context"
	"sync"

	courseservice "github.com/Black-And-White-Club/scorecard/app/modules/course/application"
	coursehandlers "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/handlers"
	coursedb "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the course module.
type Module struct {
	CourseService courseservice.Service
	Repository    coursedb.Repository
	cancelFunc    context.CancelFunc
	observability *observability.Observability
}

// NewCourseModule wires the course repository, service and HTTP routes.
func NewCourseModule(
	ctx context.Context,
	obs *observability.Observability,
	metrics observability.ServiceMetrics,
	db *bun.DB,
	httpRouter chi.Router,
) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "course.NewCourseModule initializing")

	repo := coursedb.NewRepository(db)
	service := courseservice.NewCourseService(repo, logger, metrics, obs.Tracer("course"), db)

	if httpRouter != nil {
		coursehandlers.NewCourseHandlers(service, logger).Register(httpRouter)
	}

	return &Module{
		CourseService: service,
		Repository:    repo,
		observability: obs,
	}
}

// Run blocks until ctx is cancelled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting course module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Course module goroutine stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.observability.Logger.Info("Course module stopped")
	return nil
}
