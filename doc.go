/*
Package ordtree implements keyed, in-memory ordered trees over records.

Two variants share the same record shape and ordering rules:

  - BST, an unbalanced binary search tree,
  - AVL, a self-balancing binary search tree which restores the height
    balance by rotations after every insertion.

Both are keyed by a unique positive integer ID. Inserting a record with an ID
already present is rejected and leaves the tree untouched. There is no
per-node deletion; a tree is emptied as a whole by Clear.

	Operation     |   BST           |  AVL
	--------------+-----------------+----------
	Insert        |   O(height)     |  O(log n)
	Search        |   O(height)     |  O(log n)
	Traverse      |   O(n)          |  O(n)
	Clear         |   O(1)          |  O(1)

Trees are not safe for concurrent use. Package treesvc wraps one tree per
variant with the locking a shared instance needs.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file in the repository root.

*/
package ordtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the ordtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrDuplicateKey is flagged whenever a record is inserted with an ID which
// is already present in the tree. The tree is left unchanged.
const ErrDuplicateKey = TreeError("duplicate key")

// ErrNotFound is flagged whenever a search for an ID comes up empty.
const ErrNotFound = TreeError("record not found")

// ErrValidation is flagged for malformed records, e.g. a non-positive ID.
const ErrValidation = TreeError("invalid record")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvariant is flagged by Check if a tree violates one of its structural
// invariants.
const ErrInvariant = TreeError("tree invariant violated")
