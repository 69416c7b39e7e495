package byteset

import (
	"github.com/spaolacci/murmur3"

	"github.com/kvora/kvora/internal/buffer"
)

const (
	initialBuckets = 8
	maxLoadFactor  = 0.75
)

type slot struct {
	used bool
	hash uint32
	val  buffer.Frozen
}

// Set is an open-addressed hash set of byte strings, hashed with
// murmur3.Sum32. Its iteration order (Members, Pop) depends only on the
// hash of each member and the current table size, never on insertion
// order or Go's map randomization, so it is a deterministic function of
// the set's current contents within one process.
type Set struct {
	buckets []slot
	count   int
}

// New creates an empty Set.
func New() *Set {
	return &Set{buckets: make([]slot, initialBuckets)}
}

// Len returns the number of members.
func (s *Set) Len() int {
	return s.count
}

func hashOf(b []byte) uint32 {
	return murmur3.Sum32(b)
}

func (s *Set) indexFor(h uint32) int {
	return int(h) & (len(s.buckets) - 1)
}

// find returns the bucket index holding b, or the first empty slot on its
// probe sequence if b is absent.
func (s *Set) find(b []byte, h uint32) (idx int, found bool) {
	mask := len(s.buckets) - 1
	i := int(h) & mask
	for {
		sl := &s.buckets[i]
		if !sl.used {
			return i, false
		}
		if sl.hash == h && sl.val.Len() == len(b) && equalBytes(sl.val.Bytes(), b) {
			return i, true
		}
		i = (i + 1) & mask
	}
}

func equalBytes(a, b []byte) bool {
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

// Add inserts a new member, taking ownership of val. Duplicates (by byte
// content) are silently ignored, releasing val since the caller's
// reference is no longer needed. Reports whether the member was newly
// inserted.
func (s *Set) Add(val buffer.Frozen) bool {
	b := val.Bytes()
	h := hashOf(b)
	if s.count+1 > int(float64(len(s.buckets))*maxLoadFactor) {
		s.grow()
	}
	idx, found := s.find(b, h)
	if found {
		val.Release()
		return false
	}
	s.buckets[idx] = slot{used: true, hash: h, val: val}
	s.count++
	return true
}

// Has reports whether b is a member.
func (s *Set) Has(b []byte) bool {
	if s.count == 0 {
		return false
	}
	_, found := s.find(b, hashOf(b))
	return found
}

// Remove deletes b if present, using backward-shift deletion so the table
// never accumulates tombstones. Reports whether it was present.
func (s *Set) Remove(b []byte) bool {
	if s.count == 0 {
		return false
	}
	idx, found := s.find(b, hashOf(b))
	if !found {
		return false
	}
	s.buckets[idx].val.Release()
	s.deleteAt(idx)
	s.count--
	return true
}

// deleteAt empties bucket idx and shifts forward-probing entries back to
// close the gap, per standard open-addressing backward-shift deletion.
func (s *Set) deleteAt(idx int) {
	mask := len(s.buckets) - 1
	s.buckets[idx] = slot{}
	i := idx
	next := idx
	for {
		next = (next + 1) & mask
		if !s.buckets[next].used {
			return
		}
		home := int(s.buckets[next].hash) & mask
		// If shifting next back to i doesn't cross its own home slot in
		// the probe sequence, move it.
		if probeDistance(home, i, len(s.buckets)) < probeDistance(home, next, len(s.buckets)) {
			s.buckets[i] = s.buckets[next]
			s.buckets[next] = slot{}
			i = next
		}
	}
}

func probeDistance(home, at, n int) int {
	d := at - home
	if d < 0 {
		d += n
	}
	return d
}

// Pop removes and returns one member chosen deterministically as the
// lowest-index occupied bucket. Reports false if the set is empty.
func (s *Set) Pop() (buffer.Frozen, bool) {
	for i := range s.buckets {
		if s.buckets[i].used {
			val := s.buckets[i].val
			s.deleteAt(i)
			s.count--
			return val, true
		}
	}
	return buffer.Frozen{}, false
}

// Members returns every member in the set's deterministic bucket order.
func (s *Set) Members() []buffer.Frozen {
	out := make([]buffer.Frozen, 0, s.count)
	for i := range s.buckets {
		if s.buckets[i].used {
			out = append(out, s.buckets[i].val)
		}
	}
	return out
}

func (s *Set) grow() {
	old := s.buckets
	s.buckets = make([]slot, len(old)*2)
	for _, sl := range old {
		if !sl.used {
			continue
		}
		idx, _ := s.find(sl.val.Bytes(), sl.hash)
		s.buckets[idx] = sl
	}
}
