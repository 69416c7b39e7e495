package admin

import (
	"log/slog"
	"net/http"

	"github.com/kvora/kvora/internal/registry"
	"github.com/kvora/kvora/internal/telemetry/metric"
)

// RouterConfig holds the dependencies NewRouter wires into the admin
// mux.
type RouterConfig struct {
	Registry *registry.Registry
	Metrics  *metric.Registry
	Logger   *slog.Logger
}

// NewRouter builds the admin HTTP handler: /healthz, /metrics, and
// /connections, each wrapped in RequestID+Recover+AccessLog.
func NewRouter(cfg *RouterConfig) http.Handler {
	h := newHandler(cfg.Registry)

	wrap := func(handler http.Handler) http.Handler {
		return Chain(handler, RequestID(), Recover(cfg.Logger), AccessLog(cfg.Logger))
	}

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", wrap(http.HandlerFunc(h.handleHealthz)))
	mux.Handle("GET /connections", wrap(http.HandlerFunc(h.handleConnections)))
	mux.Handle("GET /metrics", wrap(cfg.Metrics.Handler()))

	return mux
}
