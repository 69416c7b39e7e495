// Package resp implements an incremental RESP2 framer.
//
// Unlike a blocking reader built on bufio.Reader, Next never blocks on
// I/O itself: it only ever looks at bytes already sitting in a
// buffer.Accumulator, reporting StatusIncomplete when it needs more. This
// lets a connection's read loop interleave "read some bytes" with "parse
// whatever frames are now complete" without a dedicated goroutine per
// partially-read command.
//
// Command arguments are returned as buffer.Frozen values sliced directly
// out of the accumulator's backing array (see internal/buffer): no frame
// is copied unless a caller downstream decides to keep it past the next
// accumulator compaction, via Frozen.Own.
package resp
