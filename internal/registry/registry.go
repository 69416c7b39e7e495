package registry

import (
	"crypto/rand"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/kvora/kvora/pkg/cmap"
)

// IDPrefix identifies a connection ID as belonging to this registry,
// mirroring the tmss-/tmak- prefix convention the teacher lineage uses
// for session and API-key IDs. Format: kv-{ulid_lowercase}.
const IDPrefix = "kv-"

// Entry describes one live connection for admin introspection. ID,
// RemoteAddr, and AcceptedAt are set once at registration and read-only
// afterward; Registry's locking protects the map, not these fields.
// keyCount is the exception — internal/conn updates it after every
// dispatched command so Registry.TotalKeys can report an aggregate live
// key count without the store itself (deliberately single-owner, never
// shared) being visible outside its own connection.
type Entry struct {
	ID         string
	RemoteAddr string
	AcceptedAt time.Time

	keyCount atomic.Int64
}

// SetKeyCount records this connection's current store size.
func (e *Entry) SetKeyCount(n int) {
	e.keyCount.Store(int64(n))
}

// Registry is the sharded, concurrently-mutated directory of live
// connections. Every reader/writer goroutine pair registers itself on
// accept and deregisters on close; internal/admin reads it for
// diagnostics.
type Registry struct {
	entries *cmap.Map[string, *Entry]
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: cmap.New[string, *Entry]()}
}

// NewID generates a lexicographically sortable connection ID. IDs sort by
// creation millisecond; IDs made within the same millisecond are not
// ordered among themselves, since each call uses fresh entropy.
func NewID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return IDPrefix + strings.ToLower(id.String())
}

// Register adds a new Entry for a just-accepted connection.
func (r *Registry) Register(id string, remote net.Addr) *Entry {
	e := &Entry{ID: id, RemoteAddr: remote.String(), AcceptedAt: time.Now()}
	r.entries.Set(id, e)
	return e
}

// Deregister removes id, called once the connection's reader and writer
// have both exited.
func (r *Registry) Deregister(id string) {
	r.entries.Delete(id)
}

// Count returns the number of currently registered connections.
func (r *Registry) Count() int {
	return r.entries.Count()
}

// Snapshot returns every current Entry, for admin listing endpoints.
func (r *Registry) Snapshot() []*Entry {
	return r.entries.Values()
}

// OldestAcceptedAt returns the AcceptedAt time of the longest-lived
// registered connection. ok is false when the registry is empty.
func (r *Registry) OldestAcceptedAt() (t time.Time, ok bool) {
	for _, e := range r.entries.Values() {
		if !ok || e.AcceptedAt.Before(t) {
			t, ok = e.AcceptedAt, true
		}
	}
	return t, ok
}

// TotalKeys sums Entry.keyCount across every registered connection,
// giving an aggregate live-key count across stores that are themselves
// deliberately per-connection and never shared.
func (r *Registry) TotalKeys() int64 {
	var total int64
	for _, e := range r.entries.Values() {
		total += e.keyCount.Load()
	}
	return total
}
