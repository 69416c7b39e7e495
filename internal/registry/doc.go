// Package registry is the one structure in the repository genuinely
// shared and concurrently mutated across connections: a directory of
// live connections that internal/admin reads for introspection (how
// many connections are open, when each was accepted, its remote
// address). Every other cross-connection idea (the store, the read
// accumulator) is deliberately single-owner; this one earns the
// sharded-locking treatment pkg/cmap already provides because unlike the
// store, many reader/writer goroutine pairs really do register and
// deregister into it at once.
package registry
