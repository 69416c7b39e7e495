package conn

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/kvora/kvora/internal/buffer"
	"github.com/kvora/kvora/internal/dispatch"
	"github.com/kvora/kvora/internal/encoder"
	"github.com/kvora/kvora/internal/registry"
	"github.com/kvora/kvora/internal/resp"
	"github.com/kvora/kvora/internal/store"
	"github.com/kvora/kvora/internal/telemetry/metric"
)

// Config tunes one connection's read/write behavior. Zero values fall
// back to DefaultConfig's, the way the teacher's redisserver.Config does
// for its own timeouts.
type Config struct {
	// QueueDepth bounds the reader-to-writer channel. When full, the
	// reader's send blocks, which is how a slow writer applies
	// backpressure all the way back to the socket read.
	QueueDepth int
	// ReadTimeout is accepted and defaulted but not applied: Conn sets
	// no deadline based on it.
	ReadTimeout time.Duration
	// WriteTimeout bounds a single flush to the socket.
	WriteTimeout time.Duration
	// IdleTimeout bounds every wait for more bytes from the client,
	// including a wait in the middle of a partially received command; a
	// connection that sends nothing for this long is dropped.
	IdleTimeout time.Duration
}

// DefaultConfig returns the values New falls back to for any Config
// field left at zero (cmd/kvora-server fills Config from internal/config).
func DefaultConfig() Config {
	return Config{
		QueueDepth:   128,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  5 * time.Minute,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.QueueDepth <= 0 {
		c.QueueDepth = d.QueueDepth
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = d.IdleTimeout
	}
	return c
}

// Conn drives one accepted socket: it owns the socket, a per-connection
// Store (§3.1's per-connection single-owner store), the read
// accumulator, and the bounded reply queue between its reader and
// writer goroutines.
type Conn struct {
	net     net.Conn
	cfg     Config
	store   *store.Store
	entry   *registry.Entry
	logger  *slog.Logger
	metrics *metric.Registry

	jobs chan encoder.Job
}

// New wraps an accepted net.Conn. entry may be nil if the caller doesn't
// use internal/registry; metrics may be nil if the caller doesn't want
// per-command metrics recorded.
func New(c net.Conn, cfg Config, entry *registry.Entry, logger *slog.Logger, metrics *metric.Registry) *Conn {
	if logger == nil {
		logger = slog.Default()
	}
	return &Conn{
		net:     c,
		cfg:     cfg.withDefaults(),
		store:   store.New(),
		entry:   entry,
		logger:  logger,
		metrics: metrics,
		jobs:    make(chan encoder.Job, cfg.withDefaults().QueueDepth),
	}
}

// Serve runs the reader and writer goroutines to completion, blocking
// until both have exited (the connection is fully drained and closed).
// The caller is responsible for closing the underlying net.Conn once
// Serve returns.
func (c *Conn) Serve() {
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writeLoop()
	}()
	c.readLoop()
	<-done
}

func (c *Conn) readLoop() {
	defer close(c.jobs)

	acc := buffer.NewAccumulator(4096)
	for {
		if err := c.net.SetReadDeadline(time.Now().Add(c.cfg.IdleTimeout)); err != nil {
			return
		}
		n, err := acc.Fill(4096, c.net.Read)
		if n == 0 && err != nil {
			if !errors.Is(err, io.EOF) {
				c.logDeadline(err, "read")
			}
			return
		}

		frames, status := resp.ReadFrames(acc)
		for _, f := range frames {
			reply := c.dispatch(f)
			c.enqueue(encoder.Job{Reply: reply})
		}
		if status == resp.StatusInvalid {
			// The input stream is no longer trustworthy past this point,
			// so the connection is closed outright with no reply.
			c.logger.Debug("closing connection on malformed frame", "remote", c.net.RemoteAddr())
			return
		}
		acc.Compact()
	}
}

// dispatch runs f through internal/dispatch and, when metrics are
// configured, records its latency and the connection's resulting store
// size.
func (c *Conn) dispatch(f resp.Frame) dispatch.Reply {
	start := time.Now()
	reply := dispatch.Dispatch(f, c.store)
	if c.metrics != nil && len(f.Args) > 0 {
		name := f.Args[0].String()
		c.metrics.RecordCommand(name, time.Since(start), reply.Kind == dispatch.ReplyError)
	}
	if c.entry != nil {
		c.entry.SetKeyCount(c.store.DBSize())
	}
	return reply
}

// enqueue hands job to the writer goroutine, recording how deep the
// queue was at send time.
func (c *Conn) enqueue(job encoder.Job) {
	if c.metrics != nil {
		c.metrics.ObserveQueueDepth(len(c.jobs))
	}
	c.jobs <- job
}

func (c *Conn) writeLoop() {
	acc := buffer.NewAccumulator(4096)
	for job := range c.jobs {
		acc.Reset()
		encoder.Encode(acc, job.Reply)

		draining := true
		for draining {
			select {
			case job, ok := <-c.jobs:
				if !ok {
					draining = false
					break
				}
				encoder.Encode(acc, job.Reply)
			default:
				draining = false
			}
		}

		if err := c.net.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout)); err != nil {
			return
		}
		if _, err := c.net.Write(acc.Bytes()); err != nil {
			return
		}
	}
}

func (c *Conn) logDeadline(err error, phase string) {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		c.logger.Debug("connection timed out", "phase", phase, "remote", c.net.RemoteAddr())
		return
	}
	c.logger.Debug("connection error", "phase", phase, "remote", c.net.RemoteAddr(), "error", err)
}
