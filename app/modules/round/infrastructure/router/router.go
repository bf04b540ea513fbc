package roundrouter

import (
	"log/slog"

	roundevents "github.com/Black-And-White-Club/scorecard/app/modules/round/domain/events"
	"github.com/Black-And-White-Club/scorecard/app/shared/eventbus"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
)

// RoundRouter subscribes the round module to its own events.
type RoundRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	metrics    RoundMetrics

	metricsBuilder *metrics.PrometheusMetricsBuilder
}

// NewRoundRouter creates a RoundRouter. A nil registry skips the Watermill
// router metrics.
func NewRoundRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	roundMetrics RoundMetrics,
	registry prometheus.Registerer,
) *RoundRouter {
	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if registry != nil {
		b := metrics.NewPrometheusMetricsBuilder(registry, "scorecard", "bus")
		metricsBuilder = &b
	}
	if roundMetrics == nil {
		roundMetrics = NewNoopRoundMetrics()
	}

	return &RoundRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		metrics:        roundMetrics,
		metricsBuilder: metricsBuilder,
	}
}

// Configure registers the round event handlers on the router.
func (r *RoundRouter) Configure() {
	if r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddNoPublisherHandler(
		"round."+roundevents.RoundHoleScoredV1,
		roundevents.RoundHoleScoredV1,
		r.subscriber,
		r.handleHoleScored,
	)
	r.Router.AddNoPublisherHandler(
		"round."+roundevents.RoundDeletedV1,
		roundevents.RoundDeletedV1,
		r.subscriber,
		r.handleRoundDeleted,
	)
}

func (r *RoundRouter) handleHoleScored(msg *message.Message) error {
	payload, err := eventbus.Decode[roundevents.RoundHoleScoredPayloadV1](msg)
	if err != nil {
		// Undecodable messages would be redelivered forever.
		r.logger.ErrorContext(msg.Context(), "Dropping malformed hole scored event",
			slog.String("message_id", msg.UUID),
			slog.Any("error", err),
		)
		return nil
	}

	if payload.Score == nil {
		return nil
	}

	r.metrics.RecordHoleScored(string(payload.CompetitionType))
	for _, rule := range payload.Tiger5.Violated() {
		r.metrics.RecordTiger5Violation(string(rule))
	}

	r.logger.DebugContext(msg.Context(), "Hole scored",
		slog.String("round_id", payload.RoundID.String()),
		slog.Int("hole_number", payload.HoleNumber),
		slog.Int("score", *payload.Score),
		slog.Int("total_score", payload.Totals.TotalScore),
		slog.String(eventbus.RequestIDKey, msg.Metadata.Get(eventbus.RequestIDKey)),
	)
	return nil
}

func (r *RoundRouter) handleRoundDeleted(msg *message.Message) error {
	payload, err := eventbus.Decode[roundevents.RoundDeletedPayloadV1](msg)
	if err != nil {
		r.logger.ErrorContext(msg.Context(), "Dropping malformed round deleted event",
			slog.String("message_id", msg.UUID),
			slog.Any("error", err),
		)
		return nil
	}

	r.metrics.RecordRoundDeleted(string(payload.CompetitionType))
	r.logger.InfoContext(msg.Context(), "Round deleted",
		slog.String("round_id", payload.RoundID.String()),
		slog.String(eventbus.RequestIDKey, msg.Metadata.Get(eventbus.RequestIDKey)),
	)
	return nil
}

// Close stops the shared router.
func (r *RoundRouter) Close() error {
	return r.Router.Close()
}
