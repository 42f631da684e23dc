package ordtree

import (
	"fmt"
	"iter"
	"strings"
)

// Tree is the API common to both tree variants.
type Tree interface {
	// Variant tells which kind of tree this is.
	Variant() Variant
	// Insert adds a record. It fails with ErrDuplicateKey if the record's ID is
	// already present, in which case the tree is not modified.
	Insert(rec Record) error
	// Search returns the record stored with id, or ErrNotFound.
	Search(id ID) (Record, error)
	// Traverse returns a restartable sequence of all records in a given order.
	Traverse(order Order) iter.Seq[Record]
	// Len returns the number of records in the tree.
	Len() int
	// IsEmpty reports whether the tree holds no records.
	IsEmpty() bool
	// Height returns the number of nodes on the longest root-to-leaf path.
	Height() int
	// Root returns the record at the root, if any.
	Root() (Record, bool)
	// Snapshot returns a recursive copy of the tree's shape, or nil if empty.
	Snapshot() *Snapshot
	// Clear drops all records and returns how many have been removed.
	Clear() int
	// Check validates the structural invariants of the tree.
	Check() error
}

// New creates an empty tree of a given variant.
func New(v Variant) (Tree, error) {
	switch v {
	case BSTVariant:
		return NewBST(), nil
	case AVLVariant:
		return NewAVL(), nil
	}
	return nil, fmt.Errorf("%w: unknown tree variant %d", ErrIllegalArguments, v)
}

// Variant distinguishes the tree implementations.
type Variant int

// Tree variants
const (
	BSTVariant Variant = iota // unbalanced binary search tree
	AVLVariant                // height-balanced binary search tree
)

// Variants lists all tree variants.
var Variants = [...]Variant{BSTVariant, AVLVariant}

func (v Variant) String() string {
	switch v {
	case BSTVariant:
		return "bst"
	case AVLVariant:
		return "avl"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant returns the variant for a name as produced by Variant.String.
// "abb" is accepted as an alias for "bst".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bst", "abb":
		return BSTVariant, nil
	case "avl":
		return AVLVariant, nil
	}
	return 0, fmt.Errorf("%w: unknown tree variant %q", ErrIllegalArguments, s)
}

// MarshalText encodes a variant by its name.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a variant name, see ParseVariant.
func (v *Variant) UnmarshalText(text []byte) error {
	pv, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

// Order is a visitation order for traversals.
type Order int

// Traversal orders
const (
	Inorder   Order = iota // left, node, right; ascending IDs
	Preorder               // node, left, right
	Postorder              // left, right, node
)

func (o Order) String() string {
	switch o {
	case Inorder:
		return "inorder"
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// ParseOrder returns the traversal order for a name as produced by Order.String.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inorder", "in":
		return Inorder, nil
	case "preorder", "pre":
		return Preorder, nil
	case "postorder", "post":
		return Postorder, nil
	}
	return 0, fmt.Errorf("%w: unknown traversal order %q", ErrIllegalArguments, s)
}
