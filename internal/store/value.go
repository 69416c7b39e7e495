package store

import "github.com/kvora/kvora/internal/buffer"

// Kind tags which variant a Value currently holds.
type Kind int

const (
	KindString Kind = iota
	KindList
	KindSet
)

// String returns the RESP-facing name of the kind, as used by TYPE.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	default:
		return "none"
	}
}

// value is the tagged union stored at each key. Only the field matching
// kind is meaningful.
type value struct {
	kind Kind
	str  buffer.Frozen
	list *deque
	set  *byteSet
}

func newStringValue(v buffer.Frozen) *value {
	return &value{kind: KindString, str: v}
}

func newListValue() *value {
	return &value{kind: KindList, list: newDeque()}
}

func newSetValue() *value {
	return &value{kind: KindSet, set: newByteSet()}
}

// release drops this value's references to its underlying Frozen bytes,
// called whenever a key is overwritten or removed.
func (v *value) release() {
	switch v.kind {
	case KindString:
		v.str.Release()
	case KindList:
		v.list.release()
	case KindSet:
		v.set.release()
	}
}
