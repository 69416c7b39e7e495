// Package output provides output formatting for kvora-cli.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: Table rendering with wide mode support
//   - json.go: JSON output formatting
//   - yaml.go: YAML formatter; its Format writes no output and returns nil
//   - spinner.go: Progress animation for long operations
//
// Formatters support:
//
//   - Output formats table and json (yaml is accepted but prints nothing)
//   - Wide mode for additional columns
//   - Plain, uncolored output
//   - Machine-readable output for scripting
//
package output
