package config

import "time"

// ServerConfig is the root configuration for kvora-server.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Admin  AdminSection  `koanf:"admin"`
	Conn   ConnSection   `koanf:"conn"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures the RESP listener.
type ServerSection struct {
	Addr string `koanf:"addr"`
	// RateLimitPerSecond bounds accepted connections per remote IP per
	// second; 0 disables limiting. Enforced with golang.org/x/time/rate
	// at accept time, not per-command.
	RateLimitPerSecond int `koanf:"rate_limit_per_second"`
}

// AdminSection configures the separate admin HTTP listener
// (internal/admin): /healthz, /connections and /metrics.
type AdminSection struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// ConnSection configures per-connection behavior (internal/conn.Config).
type ConnSection struct {
	QueueDepth   int           `koanf:"queue_depth"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogSection configures internal/telemetry/logger.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
