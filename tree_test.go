package ordtree

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func rec(id ID) Record {
	return Record{ID: id, Name: "child", Age: int(id % 12)}
}

func ids(recs []Record) []ID {
	out := make([]ID, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func insertAll(t *testing.T, tree Tree, keys ...ID) {
	t.Helper()
	for _, id := range keys {
		if err := tree.Insert(rec(id)); err != nil {
			t.Fatalf("insert %d failed: %v", id, err)
		}
	}
}

func traversal(tree Tree, order Order) []ID {
	return ids(slices.Collect(tree.Traverse(order)))
}

// avlHeightBound is ⌈1.44·log2(n+2) − 0.328⌉.
func avlHeightBound(n int) int {
	return int(math.Ceil(1.44*math.Log2(float64(n+2)) - 0.328))
}

func TestBSTScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := NewBST()
	insertAll(t, tree, 10, 6, 15, 4)
	if got := traversal(tree, Preorder); !slices.Equal(got, []ID{10, 6, 4, 15}) {
		t.Errorf("preorder = %v, expected [10 6 4 15]", got)
	}
	if got := traversal(tree, Inorder); !slices.Equal(got, []ID{4, 6, 10, 15}) {
		t.Errorf("inorder = %v, expected [4 6 10 15]", got)
	}
	if got := traversal(tree, Postorder); !slices.Equal(got, []ID{4, 6, 15, 10}) {
		t.Errorf("postorder = %v, expected [4 6 15 10]", got)
	}
	if tree.Len() != 4 || tree.Height() != 3 {
		t.Errorf("expected len=4 height=3, have len=%d height=%d", tree.Len(), tree.Height())
	}
	if root, ok := tree.Root(); !ok || root.ID != 10 {
		t.Errorf("expected root 10, have %v", root)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestAVLScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	keys := []ID{50, 25, 75, 10, 30, 60, 80, 5, 15, 70}
	tree := NewAVL()
	for _, id := range keys {
		if err := tree.Insert(rec(id)); err != nil {
			t.Fatal(err)
		}
		if !tree.IsBalanced() {
			t.Fatalf("tree not balanced after inserting %d", id)
		}
	}
	if tree.Height() != 4 {
		t.Errorf("expected height 4, have %d", tree.Height())
	}
	want := slices.Clone(keys)
	slices.Sort(want)
	if got := traversal(tree, Inorder); !slices.Equal(got, want) {
		t.Errorf("inorder = %v, expected %v", got, want)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestAVLRotationCases(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := map[string][]ID{
		"left-left":   {3, 2, 1},
		"right-right": {1, 2, 3},
		"left-right":  {3, 1, 2},
		"right-left":  {1, 3, 2},
	}
	for name, keys := range cases {
		tree := NewAVL()
		insertAll(t, tree, keys...)
		if got := traversal(tree, Preorder); !slices.Equal(got, []ID{2, 1, 3}) {
			t.Errorf("%s: preorder = %v, expected [2 1 3]", name, got)
		}
		if tree.Height() != 2 {
			t.Errorf("%s: expected height 2, have %d", name, tree.Height())
		}
	}
}

func TestDuplicateKeyLeavesTreeUnchanged(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, v := range Variants {
		tree, err := New(v)
		if err != nil {
			t.Fatal(err)
		}
		insertAll(t, tree, 40, 20, 60, 10, 30, 50, 70, 5)
		before := tree.Snapshot()
		dup := Record{ID: 30, Name: "other", Age: 99}
		err = tree.Insert(dup)
		if !errors.Is(err, ErrDuplicateKey) {
			t.Fatalf("%s: expected ErrDuplicateKey, got %v", v, err)
		}
		if tree.Len() != 8 {
			t.Errorf("%s: expected count to stay 8, is %d", v, tree.Len())
		}
		if !reflect.DeepEqual(before, tree.Snapshot()) {
			t.Errorf("%s: tree shape changed by rejected insert", v)
		}
		if r, _ := tree.Search(30); r.Name != "child" {
			t.Errorf("%s: record 30 has been overwritten: %v", v, r)
		}
	}
}

func TestSearch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, v := range Variants {
		tree, _ := New(v)
		if _, err := tree.Search(1); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound on empty tree, got %v", v, err)
		}
		insertAll(t, tree, 8, 3, 12, 1, 5)
		for _, id := range []ID{8, 3, 12, 1, 5} {
			r, err := tree.Search(id)
			if err != nil || r != rec(id) {
				t.Errorf("%s: search %d = %v, %v", v, id, r, err)
			}
		}
		for _, id := range []ID{2, 4, 100} {
			if _, err := tree.Search(id); !errors.Is(err, ErrNotFound) {
				t.Errorf("%s: expected ErrNotFound for %d, got %v", v, id, err)
			}
		}
	}
}

func TestClear(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, v := range Variants {
		tree, _ := New(v)
		if n := tree.Clear(); n != 0 {
			t.Errorf("%s: clearing an empty tree removed %d", v, n)
		}
		insertAll(t, tree, 2, 1, 3)
		if n := tree.Clear(); n != 3 {
			t.Errorf("%s: expected 3 records removed, have %d", v, n)
		}
		if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
			t.Errorf("%s: tree not empty after clear", v)
		}
		if _, ok := tree.Root(); ok {
			t.Errorf("%s: cleared tree reports a root", v)
		}
		if tree.Snapshot() != nil {
			t.Errorf("%s: cleared tree has a snapshot", v)
		}
		for _, o := range []Order{Inorder, Preorder, Postorder} {
			if got := traversal(tree, o); len(got) != 0 {
				t.Errorf("%s: %s traversal of cleared tree = %v", v, o, got)
			}
		}
		if _, err := tree.Search(2); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound after clear, got %v", v, err)
		}
		// a cleared tree is usable again
		insertAll(t, tree, 2)
		if tree.Len() != 1 {
			t.Errorf("%s: expected 1 record after re-insert", v)
		}
	}
}

func TestRandomInsertionsKeepInvariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	const N = 300
	for seed := int64(1); seed <= 5; seed++ {
		r := rand.New(rand.NewSource(seed))
		perm := r.Perm(N)
		avl, bst := NewAVL(), NewBST()
		for i, p := range perm {
			id := ID(p + 1)
			if err := avl.Insert(rec(id)); err != nil {
				t.Fatalf("seed %d: avl insert %d: %v", seed, id, err)
			}
			if err := bst.Insert(rec(id)); err != nil {
				t.Fatalf("seed %d: bst insert %d: %v", seed, id, err)
			}
			if !avl.IsBalanced() {
				t.Fatalf("seed %d: avl unbalanced after inserting %d", seed, id)
			}
			if h, bound := avl.Height(), avlHeightBound(i+1); h > bound {
				t.Fatalf("seed %d: avl height %d exceeds bound %d for %d records", seed, h, bound, i+1)
			}
		}
		for _, tree := range []Tree{avl, bst} {
			if err := tree.Check(); err != nil {
				t.Fatalf("seed %d: %s: %v", seed, tree.Variant(), err)
			}
			in := traversal(tree, Inorder)
			if len(in) != N || !slices.IsSorted(in) {
				t.Fatalf("seed %d: %s: inorder not ascending", seed, tree.Variant())
			}
		}
		// both trees hold the same records, whatever their shape
		if !reflect.DeepEqual(traversal(avl, Inorder), traversal(bst, Inorder)) {
			t.Errorf("seed %d: avl and bst disagree on contents", seed)
		}
	}
}

func TestDegenerateBSTIsNotLimitedByStack(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	const N = 5000
	bst, avl := NewBST(), NewAVL()
	for id := ID(1); id <= N; id++ {
		_ = bst.Insert(rec(id))
		_ = avl.Insert(rec(id))
	}
	if bst.Height() != N {
		t.Errorf("sorted inserts should degenerate a BST to height %d, is %d", N, bst.Height())
	}
	if avl.Height() > avlHeightBound(N) {
		t.Errorf("avl height %d exceeds bound %d", avl.Height(), avlHeightBound(N))
	}
	post := traversal(bst, Postorder)
	if len(post) != N || post[0] != N || post[N-1] != 1 {
		t.Errorf("unexpected postorder of degenerate tree")
	}
	if err := bst.Check(); err != nil {
		t.Error(err)
	}
}

func TestTraversalIsRestartableAndStoppable(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := NewAVL()
	insertAll(t, tree, 4, 2, 6, 1, 3, 5, 7)
	seq := tree.Traverse(Preorder)
	first := ids(slices.Collect(seq))
	second := ids(slices.Collect(seq))
	if !slices.Equal(first, second) {
		t.Errorf("second pass %v differs from first %v", second, first)
	}
	for _, o := range []Order{Inorder, Preorder, Postorder} {
		n := 0
		for range tree.Traverse(o) {
			n++
			if n == 3 {
				break
			}
		}
		if n != 3 {
			t.Errorf("%s: early break did not stop at 3", o)
		}
	}
}

func TestParseVariantAndOrder(t *testing.T) {
	for s, want := range map[string]Variant{"bst": BSTVariant, "ABB": BSTVariant, " avl ": AVLVariant} {
		if v, err := ParseVariant(s); err != nil || v != want {
			t.Errorf("ParseVariant(%q) = %v, %v", s, v, err)
		}
	}
	if _, err := ParseVariant("rb"); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for unknown variant, got %v", err)
	}
	var v Variant
	if err := v.UnmarshalText([]byte("avl")); err != nil || v != AVLVariant {
		t.Errorf("UnmarshalText(avl) = %v, %v", v, err)
	}
	for _, o := range []Order{Inorder, Preorder, Postorder} {
		if p, err := ParseOrder(o.String()); err != nil || p != o {
			t.Errorf("ParseOrder(%q) = %v, %v", o.String(), p, err)
		}
	}
	if _, err := ParseOrder("levelorder"); err == nil {
		t.Errorf("expected error for unknown order")
	}
}

func FuzzAVLInsert(f *testing.F) {
	f.Add([]byte{50, 25, 75, 10, 30, 60, 80, 5, 15, 70})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	f.Add([]byte{9, 9, 9})
	f.Fuzz(func(t *testing.T, data []byte) {
		gtrace.CoreTracer = gotestingadapter.New()
		teardown := gotestingadapter.RedirectTracing(t)
		defer teardown()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		//
		tree := NewAVL()
		seen := make(map[ID]bool)
		for _, b := range data {
			id := ID(b) + 1
			err := tree.Insert(rec(id))
			if seen[id] != errors.Is(err, ErrDuplicateKey) {
				t.Fatalf("insert %d: seen=%v, err=%v", id, seen[id], err)
			}
			seen[id] = true
			if !tree.IsBalanced() {
				t.Fatalf("unbalanced after inserting %d", id)
			}
		}
		if tree.Len() != len(seen) {
			t.Fatalf("count %d, expected %d", tree.Len(), len(seen))
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	})
}
