package ordtree

import (
	"fmt"
	"iter"
)

// AVL is a height-balanced binary search tree of records.
//
// For every node the heights of its left and right subtree differ by at most
// one. Insert restores this after every insertion by at most one single or
// double rotation per ancestor, applied bottom-up. The height of an AVL tree
// with n records never exceeds ~1.44·log2(n+2).
//
// The empty instance AVL{} is a valid, empty tree.
type AVL struct {
	root  *node
	count int
}

var _ Tree = (*AVL)(nil)

// NewAVL creates an empty balanced tree.
func NewAVL() *AVL {
	return &AVL{}
}

// Variant returns AVLVariant.
func (t *AVL) Variant() Variant {
	return AVLVariant
}

// Insert adds rec and rebalances the path from the new node up to the root.
// If a node with the same ID exists, Insert returns ErrDuplicateKey and the
// tree is unchanged.
func (t *AVL) Insert(rec Record) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	root, err := t.insert(t.root, rec)
	if err != nil {
		return err
	}
	t.root = root
	t.count++
	T().P("tree", "avl").Debugf("inserted %d, height now %d", rec.ID, height(t.root))
	return nil
}

// insert places rec in the subtree at n and returns the new root of that
// subtree. Recursion depth is bounded by the tree height, i.e. O(log n).
//
// On a duplicate the error travels up unchanged and no node on the path is
// touched, neither links nor heights.
func (t *AVL) insert(n *node, rec Record) (*node, error) {
	if n == nil {
		leaf := newNode(rec)
		leaf.height = 1
		return leaf, nil
	}
	switch {
	case rec.ID == n.rec.ID:
		return n, fmt.Errorf("%w: id %d", ErrDuplicateKey, rec.ID)
	case rec.ID < n.rec.ID:
		child, err := t.insert(n.left, rec)
		if err != nil {
			return n, err
		}
		n.left = child
	default:
		child, err := t.insert(n.right, rec)
		if err != nil {
			return n, err
		}
		n.right = child
	}
	return rebalance(n), nil
}

// --- Balancing -------------------------------------------------------------

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight(n *node) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balanceFactor is height(left) − height(right), 0 for an absent node.
func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rebalance updates the height of n and applies the first applicable rotation
// case. It returns the new root of the subtree.
func rebalance(n *node) *node {
	updateHeight(n)
	bf := balanceFactor(n)
	switch {
	case bf > 1 && balanceFactor(n.left) >= 0: // left-left
		return rotateRight(n)
	case bf < -1 && balanceFactor(n.right) <= 0: // right-right
		return rotateLeft(n)
	case bf > 1: // left-right
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case bf < -1: // right-left
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

// rotateRight lifts the left child of z:
//
//	      z            y
//	     / \          / \
//	    y   C  -->   x   z
//	   / \              / \
//	  x   B            B   C
func rotateRight(z *node) *node {
	y := z.left
	z.left = y.right
	y.right = z
	updateHeight(z)
	updateHeight(y)
	T().Debugf("rotate right at %d, new subtree root %d", z.rec.ID, y.rec.ID)
	return y
}

// rotateLeft lifts the right child of z; mirror image of rotateRight.
func rotateLeft(z *node) *node {
	y := z.right
	z.right = y.left
	y.left = z
	updateHeight(z)
	updateHeight(y)
	T().Debugf("rotate left at %d, new subtree root %d", z.rec.ID, y.rec.ID)
	return y
}

// --- Queries ---------------------------------------------------------------

// Search returns the record stored with id, or ErrNotFound.
func (t *AVL) Search(id ID) (Record, error) {
	if t == nil {
		return Record{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if n := find(t.root, id); n != nil {
		return n.rec, nil
	}
	return Record{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Traverse returns the records in the given order.
func (t *AVL) Traverse(order Order) iter.Seq[Record] {
	if t == nil {
		return traverse(nil, order)
	}
	return traverse(t.root, order)
}

// Len returns the number of records in the tree.
func (t *AVL) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no records.
func (t *AVL) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the stored height of the root, 0 for an empty tree.
func (t *AVL) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

// IsBalanced reports whether every node has a balance factor within −1…1.
// Insert keeps this true at all times; the method exists for verification.
func (t *AVL) IsBalanced() bool {
	if t == nil {
		return true
	}
	return balanced(t.root)
}

func balanced(n *node) bool {
	if n == nil {
		return true
	}
	if bf := balanceFactor(n); bf < -1 || bf > 1 {
		return false
	}
	return balanced(n.left) && balanced(n.right)
}

// Root returns the record at the root of the tree.
func (t *AVL) Root() (Record, bool) {
	if t == nil || t.root == nil {
		return Record{}, false
	}
	return t.root.rec, true
}

// Snapshot returns a copy of the tree's shape, or nil for an empty tree.
func (t *AVL) Snapshot() *Snapshot {
	if t == nil {
		return nil
	}
	return snapshot(t.root)
}

// Clear drops all records.
func (t *AVL) Clear() int {
	if t == nil {
		return 0
	}
	removed := t.count
	t.root = nil
	t.count = 0
	T().P("tree", "avl").Debugf("cleared %d records", removed)
	return removed
}

// Check validates the ordering invariant, the record count, the stored heights
// and the balance of every node.
func (t *AVL) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	n, err := checkOrder(t.root)
	if err != nil {
		return err
	}
	if err := checkCount(t.root, t.count, n); err != nil {
		return err
	}
	_, err = checkHeights(t.root)
	return err
}
