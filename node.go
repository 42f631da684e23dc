package ordtree

// node owns exactly one record and at most two children. Children are never
// shared between parents, and there is no link back to the parent.
//
// height is maintained by the AVL variant only; BST nodes keep it at 0.
type node struct {
	rec         Record
	left, right *node
	height      int
}

func newNode(rec Record) *node {
	return &node{rec: rec}
}

// find descends from n and returns the node carrying id, or nil.
func find(n *node, id ID) *node {
	for n != nil {
		switch {
		case id == n.rec.ID:
			return n
		case id < n.rec.ID:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// measure computes the height of the subtree at n without relying on stored
// heights. It walks level by level, so depth is not limited by the call stack.
func measure(n *node) int {
	if n == nil {
		return 0
	}
	h := 0
	level := []*node{n}
	for len(level) > 0 {
		h++
		var next []*node
		for _, m := range level {
			if m.left != nil {
				next = append(next, m.left)
			}
			if m.right != nil {
				next = append(next, m.right)
			}
		}
		level = next
	}
	return h
}
