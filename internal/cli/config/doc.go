// Package config provides CLI configuration for kvora-cli.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.kvora/cli.yaml)
//   - loader.go: config file path, Load, Save and Merge. Load returns the
//     defaults without parsing the file, Save only creates the directory,
//     and Merge returns cfg unchanged.
//
// Configuration includes:
//
//   - Default connection profile
//   - Output format preferences
package config
