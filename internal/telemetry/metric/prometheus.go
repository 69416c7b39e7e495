package metric

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every metric kvora-server exposes at /metrics.
type Registry struct {
	registry *prometheus.Registry

	ConnectionsActive        prometheus.Gauge
	ConnectionsAcceptedTotal prometheus.Counter

	CommandsTotal          *prometheus.CounterVec
	CommandErrorsTotal     *prometheus.CounterVec
	CommandDurationSeconds *prometheus.HistogramVec

	QueueDepth prometheus.Histogram
	StoreKeys  prometheus.Gauge
}

var (
	globalOnce     sync.Once
	globalRegistry *Registry
)

// Global returns the process-wide metrics registry, creating it on
// first use.
func Global() *Registry {
	globalOnce.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// NewRegistry builds a fresh Registry backed by its own
// prometheus.Registry, so tests don't collide on the default global
// registerer.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		ConnectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kvora_connections_active",
			Help: "Number of currently open client connections.",
		}),
		ConnectionsAcceptedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvora_connections_accepted_total",
			Help: "Total number of client connections accepted since startup.",
		}),
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kvora_commands_total",
			Help: "Total number of commands dispatched, by command name.",
		}, []string{"command"}),
		CommandErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kvora_command_errors_total",
			Help: "Total number of commands that returned a RESP error reply, by command name.",
		}, []string{"command"}),
		CommandDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kvora_command_duration_seconds",
			Help:    "Time to dispatch a single command, by command name.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
		QueueDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kvora_conn_queue_depth",
			Help:    "Number of encoder jobs queued for a connection's writer at send time.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		}),
		StoreKeys: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kvora_store_keys",
			Help: "Sum of live keys across every connection's store.",
		}),
	}

	reg.MustRegister(
		r.ConnectionsActive,
		r.ConnectionsAcceptedTotal,
		r.CommandsTotal,
		r.CommandErrorsTotal,
		r.CommandDurationSeconds,
		r.QueueDepth,
		r.StoreKeys,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return r
}

// Handler returns an http.Handler serving this registry in Prometheus
// text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Handler returns an http.Handler for the global registry's /metrics
// endpoint.
func Handler() http.Handler {
	return Global().Handler()
}

// RegisterConnectionCollector adds a scrape-time connection-registry
// collector to r. Safe to call at most once per Collector instance.
func (r *Registry) RegisterConnectionCollector(c *Collector) {
	r.registry.MustRegister(c)
}

// IncConnectionAccepted records a newly accepted connection.
func (r *Registry) IncConnectionAccepted() {
	r.ConnectionsAcceptedTotal.Inc()
	r.ConnectionsActive.Inc()
}

// DecConnectionActive records a connection closing.
func (r *Registry) DecConnectionActive() {
	r.ConnectionsActive.Dec()
}

// RecordCommand records one dispatched command's latency and, when
// isError is true, counts it against CommandErrorsTotal as well.
func (r *Registry) RecordCommand(command string, d time.Duration, isError bool) {
	r.CommandsTotal.WithLabelValues(command).Inc()
	r.CommandDurationSeconds.WithLabelValues(command).Observe(d.Seconds())
	if isError {
		r.CommandErrorsTotal.WithLabelValues(command).Inc()
	}
}

// ObserveQueueDepth records how many jobs were sitting in a
// connection's outbound queue when a reply was enqueued.
func (r *Registry) ObserveQueueDepth(depth int) {
	r.QueueDepth.Observe(float64(depth))
}

// SetStoreKeys sets the current aggregate live key count.
func (r *Registry) SetStoreKeys(n int) {
	r.StoreKeys.Set(float64(n))
}
