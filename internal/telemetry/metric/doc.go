// Package metric provides Prometheus metrics for kvora-server.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry and HTTP handler
//   - collector.go: a custom Collector reporting the live connection
//     count and the oldest connection's age from internal/registry
//
// Metrics include:
//
//   - Connection accept/active counts
//   - Per-command call counts, error counts, and latency histograms
//   - Per-connection outbound queue depth
//   - Live key counts across connected stores
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
