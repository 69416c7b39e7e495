package config

import "time"

// Default configuration values.
const (
	DefaultServerAddr = "0.0.0.0:6379"
	DefaultAdminAddr  = "127.0.0.1:6390"

	DefaultRateLimitPerSecond = 0 // unlimited

	DefaultQueueDepth   = 128
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 5 * time.Minute

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the configuration kvora-server runs with absent any
// flag, environment variable, or config file override.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			Addr:               DefaultServerAddr,
			RateLimitPerSecond: DefaultRateLimitPerSecond,
		},
		Admin: AdminSection{
			Enabled: true,
			Addr:    DefaultAdminAddr,
		},
		Conn: ConnSection{
			QueueDepth:   DefaultQueueDepth,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
