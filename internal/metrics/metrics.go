package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

const namespace = "ledger_indexer"

// Outcome labels
const (
	OutcomeOK           = "ok"
	OutcomeNotFound     = "not_found"
	OutcomeInvalidQuery = "invalid_query"
	OutcomeUnavailable  = "unavailable"
	OutcomeError        = "error"
)

// Config holds metrics configuration
type Config struct {
	Enabled bool
	Address string // listen address for processes without an HTTP server, e.g. ":9090"
}

// ApplyDefaults sets default values for metrics config
func (c *Config) ApplyDefaults() {
	if c.Address == "" {
		c.Address = ":9090"
	}
}

// Metrics holds all indexer metrics.
// A disabled instance accepts every call and records nothing.
type Metrics struct {
	StoreOperations *prometheus.CounterVec
	StoreLatency    *prometheus.HistogramVec
	EventsProcessed *prometheus.CounterVec
	EventRetries    *prometheus.CounterVec
	AppliedBlock    prometheus.Gauge

	registry *prometheus.Registry
	enabled  bool
}

// New creates a new metrics instance
func New(cfg Config) *Metrics {
	m := &Metrics{
		enabled:  cfg.Enabled,
		registry: prometheus.NewRegistry(),
	}

	if !cfg.Enabled {
		return m
	}

	m.StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Document store operations by collection and outcome",
		},
		[]string{"operation", "collection", "outcome"},
	)

	m.StoreLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Document store operation latency",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"operation", "collection"},
	)

	m.EventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_events_total",
			Help:      "Ledger events applied by the event bridge",
		},
		[]string{"type", "outcome"},
	)

	m.EventRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_event_retries_total",
			Help:      "Retries of ledger events after transient store failures",
		},
		[]string{"type"},
	)

	m.AppliedBlock = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "applied_block_number",
			Help:      "Highest block number applied by the event bridge",
		},
	)

	m.registry.MustRegister(
		m.StoreOperations,
		m.StoreLatency,
		m.EventsProcessed,
		m.EventRetries,
		m.AppliedBlock,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler returns an HTTP handler for metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IsEnabled returns true if metrics are enabled
func (m *Metrics) IsEnabled() bool {
	return m != nil && m.enabled
}

// NewServer returns an HTTP server exposing /metrics on the given address
func (m *Metrics) NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// ObserveStoreOperation records the outcome and latency of a store call
func (m *Metrics) ObserveStoreOperation(operation, collection string, startedAt time.Time, err error) {
	if !m.IsEnabled() {
		return
	}
	m.StoreOperations.WithLabelValues(operation, collection, Outcome(err)).Inc()
	m.StoreLatency.WithLabelValues(operation, collection).Observe(time.Since(startedAt).Seconds())
}

// RecordEvent records the outcome of a ledger event
func (m *Metrics) RecordEvent(eventType domain.EventType, err error) {
	if !m.IsEnabled() {
		return
	}
	m.EventsProcessed.WithLabelValues(string(eventType), Outcome(err)).Inc()
}

// RecordRetry records a retry of a ledger event
func (m *Metrics) RecordRetry(eventType domain.EventType) {
	if !m.IsEnabled() {
		return
	}
	m.EventRetries.WithLabelValues(string(eventType)).Inc()
}

// SetAppliedBlock records the highest applied block
func (m *Metrics) SetAppliedBlock(blockNumber uint64) {
	if !m.IsEnabled() {
		return
	}
	m.AppliedBlock.Set(float64(blockNumber))
}

// Outcome maps an error to its outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidQuery):
		return OutcomeInvalidQuery
	case errors.Is(err, domain.ErrStoreUnavailable):
		return OutcomeUnavailable
	default:
		return OutcomeError
	}
}
