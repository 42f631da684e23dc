package treesvc

import (
	"encoding/binary"

	"github.com/npillmayer/ordtree"
	"github.com/willf/bloom"
)

// lookupFilter remembers every ID inserted into a tree since the last clear.
// A negative answer is definite, a positive one has to be confirmed by the
// tree. A nil filter answers "maybe" for everything.
type lookupFilter struct {
	bf *bloom.BloomFilter
}

func newLookupFilter(capacity uint, fp float64) *lookupFilter {
	if capacity == 0 {
		return nil
	}
	return &lookupFilter{bf: bloom.NewWithEstimates(capacity, fp)}
}

func filterKey(id ordtree.ID) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(id))
	return key[:]
}

func (f *lookupFilter) add(id ordtree.ID) {
	if f == nil {
		return
	}
	f.bf.Add(filterKey(id))
}

func (f *lookupFilter) mayContain(id ordtree.ID) bool {
	if f == nil {
		return true
	}
	return f.bf.Test(filterKey(id))
}

func (f *lookupFilter) reset() {
	if f == nil {
		return
	}
	f.bf.ClearAll()
}
