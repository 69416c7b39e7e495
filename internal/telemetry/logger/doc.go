// Package logger provides structured logging for kvora-server.
//
// This package wraps log/slog for structured logging:
//
//   - logger.go: slog logger configuration and initialization
//   - context.go: Context-aware logging with request/trace IDs
//   - redact.go: Elision of oversized string values from log fields
//   - zap.go: empty placeholder; zap is not used
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering
//   - Oversized string values shortened; no masking of sensitive data
//   - Context propagation for request tracing
//
package logger
