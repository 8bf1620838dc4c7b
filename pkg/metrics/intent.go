package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IntentMetrics records the behavior of the intent resolution pipeline.
type IntentMetrics struct {
	commands      *prometheus.CounterVec
	fallbacks     prometheus.Counter
	oracleLatency prometheus.Histogram
	oracleErrors  *prometheus.CounterVec
}

// NewIntentMetrics registers the intent pipeline metrics on the provided registerer.
func NewIntentMetrics(reg prometheus.Registerer) *IntentMetrics {
	if reg == nil {
		return &IntentMetrics{}
	}
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_commands_total",
		Help: "Resolved intent commands by action tag.",
	}, []string{"action"})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "intent_fallbacks_total",
		Help: "Oracle responses that failed to parse and fell back to search.",
	})
	oracleLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "oracle_request_duration_seconds",
		Help:    "Duration of generative oracle round trips in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	oracleErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "oracle_errors_total",
		Help: "Failed oracle invocations by classification.",
	}, []string{"kind"})
	reg.MustRegister(commands, fallbacks, oracleLatency, oracleErrors)
	return &IntentMetrics{
		commands:      commands,
		fallbacks:     fallbacks,
		oracleLatency: oracleLatency,
		oracleErrors:  oracleErrors,
	}
}

// IncCommand increments the counter for the resolved action tag.
func (m *IntentMetrics) IncCommand(action string) {
	if m == nil || m.commands == nil {
		return
	}
	m.commands.WithLabelValues(normalizeLabel(action)).Inc()
}

// IncFallback increments the search-fallback counter.
func (m *IntentMetrics) IncFallback() {
	if m == nil || m.fallbacks == nil {
		return
	}
	m.fallbacks.Inc()
}

// ObserveOracleDuration records one oracle round trip.
func (m *IntentMetrics) ObserveOracleDuration(duration time.Duration) {
	if m == nil || m.oracleLatency == nil {
		return
	}
	m.oracleLatency.Observe(duration.Seconds())
}

// IncOracleError increments the error counter for the given classification.
func (m *IntentMetrics) IncOracleError(kind string) {
	if m == nil || m.oracleErrors == nil {
		return
	}
	m.oracleErrors.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
