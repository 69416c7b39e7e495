package buffer

import "sync/atomic"

// page is the shared backing array behind one or more Frozen ranges.
// Go's garbage collector already keeps the array alive for as long as any
// Frozen references it; refs exists so callers can make policy decisions
// (see dispatch.InlineCopyThreshold) about whether a range is still
// cheaply shareable or worth copying out of, not to manually free memory.
type page struct {
	buf  []byte
	refs int32
}

// Frozen is an immutable, refcounted handle to a contiguous byte span.
// The zero value is an empty, valid Frozen.
type Frozen struct {
	p      *page
	lo, hi int
}

// NewFrozen wraps an existing []byte as a standalone, exclusively-owned
// Frozen range. Use this to materialize a store-owned copy (I3), e.g.
// buffer.NewFrozen(append([]byte(nil), src...)).
func NewFrozen(b []byte) Frozen {
	return Frozen{p: &page{buf: b, refs: 1}, lo: 0, hi: len(b)}
}

// Len reports the length of the span.
func (f Frozen) Len() int {
	return f.hi - f.lo
}

// Bytes returns the span's bytes for read-only use. Callers must not
// mutate the returned slice.
func (f Frozen) Bytes() []byte {
	if f.p == nil {
		return nil
	}
	return f.p.buf[f.lo:f.hi]
}

// Clone returns a new handle to the same span, bumping the page's
// refcount. O(1), no copy.
func (f Frozen) Clone() Frozen {
	if f.p != nil {
		atomic.AddInt32(&f.p.refs, 1)
	}
	return f
}

// Release drops this handle's contribution to the page's refcount.
// It does not free memory (the Go GC owns that); it only keeps the
// refcount meaningful for Shared/RefCount-based policy decisions.
func (f Frozen) Release() {
	if f.p != nil {
		atomic.AddInt32(&f.p.refs, -1)
	}
}

// RefCount returns the page's current refcount. A count of 1 means this
// Frozen (or its clones under the caller's exclusive control) is the only
// outstanding reference to the backing page.
func (f Frozen) RefCount() int32 {
	if f.p == nil {
		return 0
	}
	return atomic.LoadInt32(&f.p.refs)
}

// Slice returns the subrange [lo:hi) of f, sharing the same backing page.
// O(1), no copy. Panics if the range is out of bounds, matching slice
// semantics.
func (f Frozen) Slice(lo, hi int) Frozen {
	if lo < 0 || hi < lo || f.lo+hi > f.hi {
		panic("buffer: Frozen.Slice out of range")
	}
	nf := Frozen{p: f.p, lo: f.lo + lo, hi: f.lo + hi}
	if f.p != nil {
		atomic.AddInt32(&f.p.refs, 1)
	}
	return nf
}

// Own returns a Frozen guaranteed to be independent of any large shared
// backing page: if the underlying page is large relative to this span
// (below threshold bytes), Own copies into a small standalone allocation
// so the caller isn't pinning a much larger array in memory. If the span
// is already at least threshold bytes, Own returns a cheap clone of the
// existing page instead of doubling memory for a payload that's already
// substantial. See dispatch.InlineCopyThreshold and SPEC_FULL.md §4.4.
func (f Frozen) Own(threshold int) Frozen {
	if f.Len() >= threshold {
		return f.Clone()
	}
	return NewFrozen(append([]byte(nil), f.Bytes()...))
}

// Equal reports whether f and g hold identical byte content.
func (f Frozen) Equal(g Frozen) bool {
	a, b := f.Bytes(), g.Bytes()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns the span's contents as a string. It copies.
func (f Frozen) String() string {
	return string(f.Bytes())
}
