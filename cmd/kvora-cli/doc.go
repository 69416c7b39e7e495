// Package main provides the entry point for kvora-cli.
//
// kvora-cli is the command-line client for kvora-server, supporting
// both single-command mode and an interactive REPL:
//
//   - Key/string/list/set commands (get, set, del, lpush, sadd, ...)
//   - Server commands (ping, dbsize, flushall)
//   - Local CLI configuration (~/.kvora/cli.yaml)
//
// Usage:
//
//	kvora-cli string get mykey
//	kvora-cli --server localhost:6379 string set mykey myvalue
//	kvora-cli repl
//
// The CLI supports both single-command mode and interactive REPL mode.
package main
