package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ConnectionSnapshot is the subset of internal/registry.Registry that
// Collector needs to compute scrape-time gauges without importing
// that package directly (avoiding a metric<->registry import cycle).
type ConnectionSnapshot interface {
	Count() int
	OldestAcceptedAt() (time.Time, bool)
}

// Collector reports connection-registry gauges computed at scrape
// time rather than incrementally maintained, so a value like "age of
// the longest-lived connection" is always exact even if nothing ever
// calls a Set/Inc for it between scrapes.
type Collector struct {
	snapshot ConnectionSnapshot

	connCount   *prometheus.Desc
	oldestConnAge *prometheus.Desc
}

// NewCollector builds a Collector that queries snapshot at each
// scrape.
func NewCollector(snapshot ConnectionSnapshot) *Collector {
	return &Collector{
		snapshot: snapshot,
		connCount: prometheus.NewDesc(
			"kvora_registry_connections",
			"Number of connections currently tracked in the connection registry.",
			nil, nil,
		),
		oldestConnAge: prometheus.NewDesc(
			"kvora_registry_oldest_connection_age_seconds",
			"Age in seconds of the longest-lived tracked connection, absent when there are none.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.connCount
	ch <- c.oldestConnAge
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.connCount, prometheus.GaugeValue, float64(c.snapshot.Count()))

	if oldest, ok := c.snapshot.OldestAcceptedAt(); ok {
		ch <- prometheus.MustNewConstMetric(c.oldestConnAge, prometheus.GaugeValue, time.Since(oldest).Seconds())
	}
}
