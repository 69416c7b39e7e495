// Package byteset provides a hash set over byte strings whose iteration
// order is a deterministic function of the set's current contents rather
// than of Go's per-process-randomized map iteration or of insertion
// history.
//
// It backs the Set value variant in internal/store: SMEMBERS and SPOP
// need a stable order within one process (so repeated snapshots of an
// unchanged set agree) without depending on the order members were
// added, which callers must not be able to rely on either.
//
// Iteration order is derived from spaolacci/murmur3 bucket hashing,
// not from Go's map and not from insertion order.
package byteset
