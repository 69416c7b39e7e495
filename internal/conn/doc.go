// Package conn drives one accepted socket through two cooperative
// goroutines — a reader that frames, dispatches, and enqueues replies,
// and a writer that drains the queue and flushes to the socket — the
// same reader/writer split the teacher's redisserver.Server.serveConn
// uses, but restructured onto a bounded channel instead of a single
// synchronous loop so a slow client's writes never block command
// dispatch against the store.
package conn
