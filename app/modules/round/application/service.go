package roundservice

import (
	"context"
	"log/slog"

	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	roundtime "github.com/Black-And-White-Club/scorecard/app/modules/round/time_utils"
	"github.com/Black-And-White-Club/scorecard/app/shared/eventbus"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// RoundService implements Service.
type RoundService struct {
	repo      rounddb.Repository
	players   PlayerLookup
	courses   CourseLookup
	publisher message.Publisher
	dates     *roundtime.DateParser
	logger    *slog.Logger
	metrics   observability.ServiceMetrics
	tracer    trace.Tracer
	db        *bun.DB
}

// NewRoundService creates a new RoundService. A nil publisher disables events.
func NewRoundService(
	repo rounddb.Repository,
	players PlayerLookup,
	courses CourseLookup,
	publisher message.Publisher,
	dates *roundtime.DateParser,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *RoundService {
	if logger == nil {
		logger = slog.Default()
	}
	if dates == nil {
		dates = roundtime.NewDateParser(nil)
	}
	return &RoundService{
		repo:      repo,
		players:   players,
		courses:   courses,
		publisher: publisher,
		dates:     dates,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		db:        db,
	}
}

// publish sends an event after the owning transaction committed. Failures are
// logged; the stored data is already durable.
func (s *RoundService) publish(ctx context.Context, topic string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := eventbus.Publish(ctx, s.publisher, topic, payload); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish round event",
			observability.RequestIDAttr(ctx),
			slog.String("topic", topic),
			slog.Any("error", err),
		)
	}
}

// withTelemetry wraps an operation with tracing, metrics and logging.
func withTelemetry[T any](s *RoundService, ctx context.Context, operation, identifier string, op func(ctx context.Context) (T, error)) (T, error) {
	return observability.RunOperation(ctx, observability.OperationRunner{
		Service:   "RoundService",
		Logger:    s.logger,
		Tracer:    s.tracer,
		Metrics:   s.metrics,
		IsFailure: IsFailure,
	}, operation, identifier, op)
}
