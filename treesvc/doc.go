/*
Package treesvc holds the long-lived trees an application works with.

A Service owns exactly one BST and one AVL tree for its whole lifetime and
serializes access to each of them: mutations take a tree's write lock for their
full duration, queries take the read lock and copy their results out before
releasing it. Callers therefore never observe a tree in the middle of a
rotation, and never hold on to live tree structure.

Every mutation is announced to subscribers as an Event. Publishing never
blocks; a subscriber which does not keep up misses events.

Optionally each tree is accompanied by a bloom filter over its IDs, which
lets Search reject most absent IDs without descending the tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treesvc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}
