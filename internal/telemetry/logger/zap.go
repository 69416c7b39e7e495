// Package logger provides structured logging for kvora-server.
//
// This file is reserved for a zap-backed Logger implementation should
// one become necessary. Current implementation lives in logger.go
// (based on log/slog).
package logger

