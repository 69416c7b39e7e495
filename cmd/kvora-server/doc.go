// Package main provides the entry point for kvora-server.
//
// The server is a single-process, in-memory key-value store that
// speaks the RESP2 wire protocol:
//
//   - TCP listener accepting RESP2 clients on server.addr
//   - Per-connection, single-owner key-value store (no cross-connection
//     sharing, no persistence)
//   - Separate admin HTTP listener on admin.addr exposing /healthz,
//     /metrics, and /connections
//
// Usage:
//
//	kvora-server [flags]
//	kvora-server --config /path/to/config.yaml
//
// Configuration is loaded from defaults, an optional YAML file, and
// KVORA_*-prefixed environment variables, in that order of increasing
// precedence.
package main
