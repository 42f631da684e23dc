package ordtree

import (
	"fmt"
	"iter"
)

// BST is an unbalanced binary search tree of records.
//
// A BST created by
//
//	BST{}
//
// is a valid, empty tree.
type BST struct {
	root  *node
	count int
}

var _ Tree = (*BST)(nil)

// NewBST creates an empty unbalanced tree.
func NewBST() *BST {
	return &BST{}
}

// Variant returns BSTVariant.
func (t *BST) Variant() Variant {
	return BSTVariant
}

// Insert adds rec at the position its ID dictates.
//
// Insert descends iteratively, keeping a handle to the link it will fill in,
// so the depth of the tree does not strain the call stack. If a node with the
// same ID exists, Insert returns ErrDuplicateKey and the tree is unchanged.
func (t *BST) Insert(rec Record) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	link := &t.root
	depth := 1
	for *link != nil {
		n := *link
		switch {
		case rec.ID == n.rec.ID:
			return fmt.Errorf("%w: id %d", ErrDuplicateKey, rec.ID)
		case rec.ID < n.rec.ID:
			link = &n.left
		default:
			link = &n.right
		}
		depth++
	}
	*link = newNode(rec)
	t.count++
	T().P("tree", "bst").Debugf("inserted %d at depth %d", rec.ID, depth)
	return nil
}

// Search returns the record stored with id, or ErrNotFound.
func (t *BST) Search(id ID) (Record, error) {
	if t == nil {
		return Record{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if n := find(t.root, id); n != nil {
		return n.rec, nil
	}
	return Record{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Traverse returns the records in the given order.
func (t *BST) Traverse(order Order) iter.Seq[Record] {
	if t == nil {
		return traverse(nil, order)
	}
	return traverse(t.root, order)
}

// Len returns the number of records in the tree.
func (t *BST) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no records.
func (t *BST) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty. A BST does not store
// heights, therefore this is an O(n) operation.
func (t *BST) Height() int {
	if t == nil {
		return 0
	}
	return measure(t.root)
}

// Root returns the record at the root of the tree.
func (t *BST) Root() (Record, bool) {
	if t == nil || t.root == nil {
		return Record{}, false
	}
	return t.root.rec, true
}

// Snapshot returns a copy of the tree's shape, or nil for an empty tree.
func (t *BST) Snapshot() *Snapshot {
	if t == nil {
		return nil
	}
	return snapshot(t.root)
}

// Clear drops all records.
func (t *BST) Clear() int {
	if t == nil {
		return 0
	}
	removed := t.count
	t.root = nil
	t.count = 0
	T().P("tree", "bst").Debugf("cleared %d records", removed)
	return removed
}

// Check validates the ordering invariant and the record count.
func (t *BST) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	n, err := checkOrder(t.root)
	if err != nil {
		return err
	}
	return checkCount(t.root, t.count, n)
}
