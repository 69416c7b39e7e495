// Package config defines the CLI configuration structure.
package config

// CLIConfig is the configuration for kvora-cli.
type CLIConfig struct {
	// Default connection settings
	DefaultServer string `yaml:"default_server"`
	DefaultOutput string `yaml:"default_output"` // table, json, yaml

	// Saved connections
	Connections map[string]ConnectionConfig `yaml:"connections"`

	// Current active connection
	CurrentConnection string `yaml:"current_connection"`
}

// ConnectionConfig stores a saved named server target. Unlike the
// teacher's ConnectionConfig, there is no API key pair or TLS flag to
// persist: kvora-cli has no connection-level authentication to
// configure.
type ConnectionConfig struct {
	Server string `yaml:"server"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		DefaultServer: "127.0.0.1:6379",
		DefaultOutput: "table",
		Connections:   make(map[string]ConnectionConfig),
	}
}
