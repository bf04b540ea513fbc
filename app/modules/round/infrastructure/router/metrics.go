package roundrouter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RoundMetrics counts round events seen on the bus.
type RoundMetrics interface {
	RecordHoleScored(competition string)
	RecordTiger5Violation(rule string)
	RecordRoundDeleted(competition string)
}

type prometheusRoundMetrics struct {
	holesScored      *prometheus.CounterVec
	tiger5Violations *prometheus.CounterVec
	roundsDeleted    *prometheus.CounterVec
}

// NewRoundMetrics registers the round event collectors on reg.
func NewRoundMetrics(reg prometheus.Registerer) RoundMetrics {
	f := promauto.With(reg)
	return &prometheusRoundMetrics{
		holesScored: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorecard",
			Subsystem: "round",
			Name:      "holes_scored_total",
			Help:      "Hole updates that produced a score, by competition.",
		}, []string{"competition"}),
		tiger5Violations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorecard",
			Subsystem: "round",
			Name:      "tiger5_violations_total",
			Help:      "Tiger 5 rules broken on scored holes.",
		}, []string{"rule"}),
		roundsDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorecard",
			Subsystem: "round",
			Name:      "deleted_total",
			Help:      "Rounds deleted, by competition.",
		}, []string{"competition"}),
	}
}

func (m *prometheusRoundMetrics) RecordHoleScored(competition string) {
	m.holesScored.WithLabelValues(competition).Inc()
}

func (m *prometheusRoundMetrics) RecordTiger5Violation(rule string) {
	m.tiger5Violations.WithLabelValues(rule).Inc()
}

func (m *prometheusRoundMetrics) RecordRoundDeleted(competition string) {
	m.roundsDeleted.WithLabelValues(competition).Inc()
}

type noopRoundMetrics struct{}

// NewNoopRoundMetrics returns RoundMetrics that discards everything.
func NewNoopRoundMetrics() RoundMetrics { return noopRoundMetrics{} }

func (noopRoundMetrics) RecordHoleScored(string)      {}
func (noopRoundMetrics) RecordTiger5Violation(string) {}
func (noopRoundMetrics) RecordRoundDeleted(string)    {}
