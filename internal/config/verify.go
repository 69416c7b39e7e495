package config

import "errors"

// Verify validates a decoded ServerConfig before kvora-server binds any
// listener.
func Verify(cfg *ServerConfig) error {
	if cfg.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if cfg.Admin.Enabled && cfg.Admin.Addr == "" {
		return errors.New("admin.addr is required when admin.enabled is true")
	}
	if cfg.Conn.QueueDepth < 1 {
		return errors.New("conn.queue_depth must be at least 1")
	}
	if cfg.Server.RateLimitPerSecond < 0 {
		return errors.New("server.rate_limit_per_second must not be negative")
	}
	return nil
}
