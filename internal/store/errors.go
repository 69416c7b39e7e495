package store

import "errors"

// ErrWrongType is returned whenever an operation targets a key whose
// stored variant doesn't match what the operation requires. It never
// carries per-key detail because internal/dispatch formats the RESP
// error text and doesn't need more than "which sentinel fired".
var ErrWrongType = errors.New("store: operation against key holding the wrong kind")

// TypeError wraps ErrWrongType with the offending key's actual kind, for
// callers (dispatch) that want to report it without a second lookup.
type TypeError struct {
	Key  string
	Kind Kind
}

func (e *TypeError) Error() string {
	return "WRONGTYPE Operation against a key holding the wrong kind of value"
}

func (e *TypeError) Unwrap() error {
	return ErrWrongType
}
