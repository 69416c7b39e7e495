package config

// Sanitize returns a shallow copy of cfg suitable for logging at
// startup. Unlike the teacher lineage's config, which masks an
// encryption key, kvora-server's config carries no secrets (Non-goals
// exclude authentication) — this exists so a future field that does
// need masking has an obvious place to go, and so startup logging keeps
// calling Sanitize rather than logging cfg directly.
func Sanitize(cfg *ServerConfig) *ServerConfig {
	sanitized := *cfg
	return &sanitized
}
