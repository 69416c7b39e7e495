// Package admin provides kvora-server's operational HTTP surface.
//
// It exposes a small, unauthenticated surface for operators and
// orchestrators (Non-goals exclude an authentication layer, so unlike
// the teacher's public API this one carries no API-key or role
// checks):
//
//   - GET /healthz: liveness/readiness check
//   - GET /metrics: Prometheus exposition
//   - GET /connections: JSON snapshot of currently open connections
//
// It listens on a separate address from the RESP port so a firewall
// or service mesh can expose one without the other.
package admin
