package store

import "github.com/kvora/kvora/internal/buffer"

// Store is the single-owner key/value mapping backing one connection.
// It is never safe for concurrent use — internal/conn guarantees exactly
// one goroutine (the connection's reader) ever calls into it.
type Store struct {
	data map[string]*value
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string]*value)}
}

// Get returns the String value at key, or (Frozen{}, false, nil) if
// absent, or a *TypeError if key holds a different variant.
func (s *Store) Get(key []byte) (buffer.Frozen, bool, error) {
	v, ok := s.data[string(key)]
	if !ok {
		return buffer.Frozen{}, false, nil
	}
	if v.kind != KindString {
		return buffer.Frozen{}, false, &TypeError{Key: string(key), Kind: v.kind}
	}
	return v.str, true, nil
}

// Set overwrites key with a String value, releasing whatever variant
// previously lived there.
func (s *Store) Set(key []byte, val buffer.Frozen) {
	k := string(key)
	if old, ok := s.data[k]; ok {
		old.release()
	}
	s.data[k] = newStringValue(val)
}

// Del removes each of keys regardless of variant, returning how many
// were actually present.
func (s *Store) Del(keys [][]byte) int {
	removed := 0
	for _, key := range keys {
		k := string(key)
		if v, ok := s.data[k]; ok {
			v.release()
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

// Exists counts how many of keys are present.
func (s *Store) Exists(keys [][]byte) int {
	n := 0
	for _, key := range keys {
		if _, ok := s.data[string(key)]; ok {
			n++
		}
	}
	return n
}

// Type reports the variant stored at key, or "none" if key is absent —
// TYPE never errors.
func (s *Store) Type(key []byte) string {
	v, ok := s.data[string(key)]
	if !ok {
		return "none"
	}
	return v.kind.String()
}

// DBSize returns the number of keys currently stored.
func (s *Store) DBSize() int {
	return len(s.data)
}

// FlushAll releases and removes every key.
func (s *Store) FlushAll() {
	for _, v := range s.data {
		v.release()
	}
	s.data = make(map[string]*value)
}

func (s *Store) listAt(key []byte, createIfAbsent bool) (*deque, bool, error) {
	k := string(key)
	v, ok := s.data[k]
	if !ok {
		if !createIfAbsent {
			return nil, false, nil
		}
		v = newListValue()
		s.data[k] = v
		return v.list, true, nil
	}
	if v.kind != KindList {
		return nil, false, &TypeError{Key: k, Kind: v.kind}
	}
	return v.list, true, nil
}

// LPush prepends vals, in the given order, so the last of vals ends up
// at the head, creating the list if key is absent. Returns the new
// length.
func (s *Store) LPush(key []byte, vals []buffer.Frozen) (int, error) {
	d, _, err := s.listAt(key, true)
	if err != nil {
		return 0, err
	}
	for _, v := range vals {
		d.PushFront(v)
	}
	return d.Len(), nil
}

// RPush appends vals, in the given order, so the last of vals ends up
// at the tail, creating the list if key is absent. Returns the new
// length.
func (s *Store) RPush(key []byte, vals []buffer.Frozen) (int, error) {
	d, _, err := s.listAt(key, true)
	if err != nil {
		return 0, err
	}
	for _, v := range vals {
		d.PushBack(v)
	}
	return d.Len(), nil
}

// LPop removes and returns the head of the list at key, deleting the key
// if the list becomes empty.
func (s *Store) LPop(key []byte) (buffer.Frozen, bool, error) {
	return s.listPop(key, (*deque).PopFront)
}

// RPop removes and returns the tail of the list at key, deleting the key
// if the list becomes empty.
func (s *Store) RPop(key []byte) (buffer.Frozen, bool, error) {
	return s.listPop(key, (*deque).PopBack)
}

func (s *Store) listPop(key []byte, pop func(*deque) (buffer.Frozen, bool)) (buffer.Frozen, bool, error) {
	d, ok, err := s.listAt(key, false)
	if err != nil {
		return buffer.Frozen{}, false, err
	}
	if !ok {
		return buffer.Frozen{}, false, nil
	}
	v, ok := pop(d)
	if !ok {
		return buffer.Frozen{}, false, nil
	}
	if d.Len() == 0 {
		delete(s.data, string(key))
	}
	return v, true, nil
}

// LRange returns the inclusive [start, stop] window of the list at key,
// with negative indices offset from the end and the result clamped to
// the list's bounds.
func (s *Store) LRange(key []byte, start, stop int64) ([]buffer.Frozen, error) {
	d, ok, err := s.listAt(key, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	n := int64(d.Len())
	lo, hi := normalizeRange(start, stop, n)
	return d.Range(int(lo), int(hi)), nil
}

// LLen returns the length of the list at key, 0 if absent.
func (s *Store) LLen(key []byte) (int, error) {
	d, ok, err := s.listAt(key, false)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return d.Len(), nil
}

// normalizeRange turns signed, possibly-negative start/stop indices into
// a clamped [lo, hi) half-open window over a sequence of length n.
func normalizeRange(start, stop, n int64) (lo, hi int64) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop > n-1 {
		stop = n - 1
	}
	if start > stop || n == 0 {
		return 0, 0
	}
	return start, stop + 1
}

func (s *Store) setAt(key []byte, createIfAbsent bool) (*byteSet, bool, error) {
	k := string(key)
	v, ok := s.data[k]
	if !ok {
		if !createIfAbsent {
			return nil, false, nil
		}
		v = newSetValue()
		s.data[k] = v
		return v.set, true, nil
	}
	if v.kind != KindSet {
		return nil, false, &TypeError{Key: k, Kind: v.kind}
	}
	return v.set, true, nil
}

// SAdd inserts each of members into the set at key, creating it if
// absent, ignoring duplicates. Returns the count of newly inserted
// members.
func (s *Store) SAdd(key []byte, members []buffer.Frozen) (int, error) {
	set, _, err := s.setAt(key, true)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, m := range members {
		if set.Add(m) {
			added++
		}
	}
	return added, nil
}

// SPop removes and returns one deterministically chosen member from the
// set at key, deleting the key if it becomes empty.
func (s *Store) SPop(key []byte) (buffer.Frozen, bool, error) {
	set, ok, err := s.setAt(key, false)
	if err != nil {
		return buffer.Frozen{}, false, err
	}
	if !ok {
		return buffer.Frozen{}, false, nil
	}
	v, ok := set.Pop()
	if !ok {
		return buffer.Frozen{}, false, nil
	}
	if set.Len() == 0 {
		delete(s.data, string(key))
	}
	return v, true, nil
}

// SMembers returns every member of the set at key in its deterministic
// bucket order, or nil if absent.
func (s *Store) SMembers(key []byte) ([]buffer.Frozen, error) {
	set, ok, err := s.setAt(key, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return set.Members(), nil
}

// SCard returns the cardinality of the set at key, 0 if absent.
func (s *Store) SCard(key []byte) (int, error) {
	set, ok, err := s.setAt(key, false)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return set.Len(), nil
}

// SIsMember reports whether member is present in the set at key.
func (s *Store) SIsMember(key, member []byte) (bool, error) {
	set, ok, err := s.setAt(key, false)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return set.Has(member), nil
}
