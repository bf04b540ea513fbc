package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ServiceMetrics records the outcome of application service operations.
type ServiceMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, d time.Duration)
}

type prometheusServiceMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewServiceMetrics registers the service operation collectors on reg.
// Call it once per registry; every service shares the same collectors.
func NewServiceMetrics(reg prometheus.Registerer) ServiceMetrics {
	f := promauto.With(reg)
	labels := []string{"service", "operation"}

	return &prometheusServiceMetrics{
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorecard",
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, labels),
		successes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorecard",
			Name:      "operation_success_total",
			Help:      "Service operations that completed without error.",
		}, labels),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorecard",
			Name:      "operation_failures_total",
			Help:      "Service operations that returned an error or panicked.",
		}, labels),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scorecard",
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}
}

func (m *prometheusServiceMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.attempts.WithLabelValues(service, operation).Inc()
}

func (m *prometheusServiceMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.successes.WithLabelValues(service, operation).Inc()
}

func (m *prometheusServiceMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.failures.WithLabelValues(service, operation).Inc()
}

func (m *prometheusServiceMetrics) RecordOperationDuration(_ context.Context, operation, service string, d time.Duration) {
	m.duration.WithLabelValues(service, operation).Observe(d.Seconds())
}

type noopServiceMetrics struct{}

// NewNoop returns ServiceMetrics that discards everything.
func NewNoop() ServiceMetrics { return noopServiceMetrics{} }

func (noopServiceMetrics) RecordOperationAttempt(context.Context, string, string) {}
func (noopServiceMetrics) RecordOperationSuccess(context.Context, string, string) {}
func (noopServiceMetrics) RecordOperationFailure(context.Context, string, string) {}
func (noopServiceMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
