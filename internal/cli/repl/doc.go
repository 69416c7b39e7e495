// Package repl provides interactive mode for kvora-cli.
//
// This package implements the Read-Eval-Print Loop for interactive
// sessions, sending each entered line straight to a connected
// kvora-server as a RESP command and printing back the decoded reply:
//
//   - repl.go: Main REPL loop and command dispatch
//   - completer.go: Tab completion for commands
//   - history.go: Command history persistence
package repl
