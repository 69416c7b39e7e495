// Package command provides CLI command definitions for kvora-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags, connection resolution
//   - connect.go: Connection management commands
//   - kv.go: Key/string/list/set/server command groups
//   - config.go: CLI-local configuration subcommand group
//   - repl.go: Interactive session command, handing off to internal/cli/repl
//
// Commands follow a consistent pattern of parsing flags, sending the
// resulting RESP command over the active connection, and formatting
// the reply.
package command
