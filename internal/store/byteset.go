package store

import "github.com/kvora/kvora/pkg/byteset"

// byteSet adapts pkg/byteset.Set with the bulk-release step Store needs
// when a Set value is overwritten or its key is deleted outright.
type byteSet struct {
	*byteset.Set
}

func newByteSet() *byteSet {
	return &byteSet{Set: byteset.New()}
}

func (s *byteSet) release() {
	for _, m := range s.Members() {
		m.Release()
	}
}
