// Package store implements the single-owner key/value mapping at the
// heart of a connection: a plain Go map from key to a tagged value
// variant (String, List, Set), touched by exactly one goroutine (the
// connection's reader, see internal/conn) and therefore requiring no
// internal locking, unlike the sharded cmap.Map the teacher lineage uses
// for its cross-connection session index.
//
// Every value stored here is a buffer.Frozen: an immutable, refcounted
// byte range. Store never copies a Frozen it's handed except where an
// operation (LPOP, RPOP, SPOP) transfers ownership of an existing value
// back out to the caller, at which point the store's own reference is
// simply dropped rather than released, since the caller now owns it.
package store
