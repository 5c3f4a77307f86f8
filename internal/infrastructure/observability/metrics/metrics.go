// Package metrics exposes Prometheus collectors for the visitor pipeline.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "adaptive_profile"

// Gateway lookup outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeError       = "error"
	OutcomeRateLimited = "rate_limited"
	OutcomeSkipped     = "skipped"
)

// Metrics holds the collectors reported by the context builder, the gateway
// and the history store.
type Metrics struct {
	contextBuilds  *prometheus.CounterVec
	gatewayLookups *prometheus.CounterVec
	gatewayLatency *prometheus.HistogramVec
	historyWrites  *prometheus.CounterVec
}

var (
	defaultMetricsOnce sync.Once
	sharedMetrics      *Metrics
)

// Default returns the instance registered with the global Prometheus registry.
func Default() *Metrics {
	defaultMetricsOnce.Do(func() {
		sharedMetrics = MustNewMetrics(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}

// MustNewMetrics constructs a Metrics instance using the provided registerer.
// Tests should pass a fresh prometheus.NewRegistry(). Registration errors other
// than AlreadyRegistered panic.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		contextBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "context_builds_total",
			Help:      "Visitor contexts built, by kind (human or bot).",
		}, []string{"kind"}),
		gatewayLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_lookups_total",
			Help:      "Geolocation and weather lookups by outcome.",
		}, []string{"lookup", "outcome"}),
		gatewayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_lookup_duration_seconds",
			Help:      "Latency of outbound geolocation and weather calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"lookup"}),
		historyWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_writes_total",
			Help:      "Visitor history writes by outcome.",
		}, []string{"outcome"}),
	}

	m.contextBuilds = register(reg, m.contextBuilds)
	m.gatewayLookups = register(reg, m.gatewayLookups)
	m.gatewayLatency = register(reg, m.gatewayLatency)
	m.historyWrites = register(reg, m.historyWrites)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// IncContextBuild counts one built visitor context.
func (m *Metrics) IncContextBuild(isBot bool) {
	if m == nil {
		return
	}
	kind := "human"
	if isBot {
		kind = "bot"
	}
	m.contextBuilds.WithLabelValues(kind).Inc()
}

// ObserveLookup records one gateway call. Duration is only observed for calls
// that actually went out.
func (m *Metrics) ObserveLookup(lookup, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.gatewayLookups.WithLabelValues(lookup, outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeError {
		m.gatewayLatency.WithLabelValues(lookup).Observe(duration.Seconds())
	}
}

// IncHistoryWrite counts a history write, failed or not.
func (m *Metrics) IncHistoryWrite(err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.historyWrites.WithLabelValues(outcome).Inc()
}
