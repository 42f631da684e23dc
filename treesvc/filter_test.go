package treesvc

import (
	"testing"

	"github.com/npillmayer/ordtree"
)

func TestLookupFilter(t *testing.T) {
	f := newLookupFilter(100, 0.01)
	for id := ordtree.ID(1); id <= 50; id++ {
		f.add(id)
	}
	for id := ordtree.ID(1); id <= 50; id++ {
		if !f.mayContain(id) {
			t.Fatalf("filter lost id %d", id)
		}
	}
	f.reset()
	misses := 0
	for id := ordtree.ID(1); id <= 50; id++ {
		if !f.mayContain(id) {
			misses++
		}
	}
	if misses != 50 {
		t.Errorf("expected reset filter to reject all ids, rejected %d", misses)
	}
	var none *lookupFilter
	none.add(3)
	none.reset()
	if !none.mayContain(3) || newLookupFilter(0, 0.01) != nil {
		t.Errorf("disabled filter must answer maybe")
	}
}
