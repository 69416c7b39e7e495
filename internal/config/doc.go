// Package config defines kvora-server's configuration structure,
// following the same Default/Sanitize/Verify triad the teacher's
// internal/server/config uses: a plain struct decoded by koanf, a
// Default() constructor, a Sanitize() for safe logging, and a Verify()
// that runs once at startup.
package config
