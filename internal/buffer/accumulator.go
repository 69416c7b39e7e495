package buffer

// minGrow is the smallest chunk Grow will make room for at a time, so a
// long-lived connection reading many small commands doesn't reallocate on
// every syscall.
const minGrow = 4096

// compactThreshold: Accumulator only bothers reallocating to reclaim its
// consumed prefix once that prefix is at least this many bytes, so
// short-lived garbage from a handful of small commands doesn't trigger a
// copy. The size of the backing array is not considered.
const compactThreshold = 64 * 1024

// Accumulator is a growable, appendable byte buffer that hands out
// zero-copy Frozen ranges via Take. Bytes at indices below the current
// read offset are considered already consumed; Take never invalidates a
// previously returned Frozen, because Compact reallocates into a brand
// new backing array instead of shifting bytes in place.
type Accumulator struct {
	buf []byte // buf[off:] is the unconsumed window
	off int
}

// NewAccumulator creates an Accumulator with the given initial capacity
// hint.
func NewAccumulator(capHint int) *Accumulator {
	if capHint < minGrow {
		capHint = minGrow
	}
	return &Accumulator{buf: make([]byte, 0, capHint)}
}

// Len returns the number of unconsumed bytes currently buffered.
func (a *Accumulator) Len() int {
	return len(a.buf) - a.off
}

// Bytes returns a view of the unconsumed window. The returned slice
// aliases the accumulator's backing array and is invalidated by the next
// call to Fill, Take, Discard, or Compact — callers that need to retain
// data past that must go through Take.
func (a *Accumulator) Bytes() []byte {
	return a.buf[a.off:]
}

// Peek returns up to n unconsumed bytes without consuming them. It may
// return fewer than n bytes if that's all that's buffered.
func (a *Accumulator) Peek(n int) []byte {
	avail := a.Bytes()
	if n > len(avail) {
		n = len(avail)
	}
	return avail[:n]
}

// grow ensures there is room for at least n more bytes to be appended
// after the current write position, growing geometrically like slice
// append so repeated small reads amortize to O(1).
func (a *Accumulator) grow(n int) {
	free := cap(a.buf) - len(a.buf)
	if free >= n {
		return
	}
	need := len(a.buf) + n
	newCap := cap(a.buf) * 2
	if newCap < need {
		newCap = need
	}
	if newCap < minGrow {
		newCap = minGrow
	}
	nb := make([]byte, len(a.buf), newCap)
	copy(nb, a.buf)
	a.buf = nb
}

// Fill grows the accumulator's free tail to at least minFree bytes and
// invokes read once against that tail so the caller (typically
// net.Conn.Read) can fill the buffer without an intermediate copy. It
// returns whatever read returns.
func (a *Accumulator) Fill(minFree int, read func([]byte) (int, error)) (int, error) {
	if minFree <= 0 {
		minFree = minGrow
	}
	a.grow(minFree)
	tail := a.buf[len(a.buf):cap(a.buf)]
	n, err := read(tail)
	if n > 0 {
		a.buf = a.buf[:len(a.buf)+n]
	}
	return n, err
}

// Append grows the accumulator's tail as needed and copies b onto the
// end of it, for producers (internal/encoder) that already hold the
// bytes to write rather than filling from an io.Reader.
func (a *Accumulator) Append(b []byte) {
	a.grow(len(b))
	a.buf = append(a.buf, b...)
}

// Take splits off the first n unconsumed bytes as an owned, zero-copy
// Frozen range and advances the read offset past them. It reports false
// if fewer than n bytes are currently buffered, consuming nothing.
func (a *Accumulator) Take(n int) (Frozen, bool) {
	if n < 0 || n > a.Len() {
		return Frozen{}, false
	}
	span := a.buf[a.off : a.off+n]
	a.off += n
	// The Frozen keeps a private page that aliases the shared backing
	// array without copying; Compact never mutates that array, it only
	// ever allocates a new one, so this handle stays valid regardless of
	// what the accumulator does afterwards.
	return Frozen{p: &page{buf: span, refs: 1}, lo: 0, hi: len(span)}, true
}

// Discard skips the first n unconsumed bytes without materializing them,
// for protocol framing (CRLF, length headers) the caller has no use for
// once parsed.
func (a *Accumulator) Discard(n int) bool {
	if n < 0 || n > a.Len() {
		return false
	}
	a.off += n
	return true
}

// Compact reclaims the consumed prefix by reallocating into a fresh
// backing array once that prefix is large enough to be worth it. It never
// writes into the old array, so any Frozen ranges Take already handed out
// remain valid and independent of this call (I4).
func (a *Accumulator) Compact() {
	if a.off < compactThreshold {
		return
	}
	remaining := a.Len()
	newCap := cap(a.buf) - a.off
	if newCap < minGrow {
		newCap = minGrow
	}
	nb := make([]byte, remaining, newCap)
	copy(nb, a.buf[a.off:])
	a.buf = nb
	a.off = 0
}

// Reset discards all buffered content, consumed or not. Used when a
// connection is done and its accumulator is being torn down.
func (a *Accumulator) Reset() {
	a.buf = a.buf[:0]
	a.off = 0
}
