// Package shutdown provides graceful shutdown for kvora-server.
//
// This package handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Shutdown timeout, passed to each callback as a context deadline
//     (a callback that overruns it is not interrupted)
//   - Cleanup callback registration
//   - Shutdown coordination
//
// Usage:
//
//	h := shutdown.NewHandler(30 * time.Second, shutdown.WithLogger(log))
//	h.OnShutdown(func(ctx context.Context) error { return listener.Close() })
//	if err := h.Wait(); err != nil { ... } // blocks until SIGINT/SIGTERM
//
package shutdown
