package ordtree

// Snapshot is a detached copy of a tree's shape. Each snapshot node carries
// its record, the height of its subtree and its two children, either of which
// may be nil.
//
// Snapshots share nothing with the tree they were taken from, so they stay
// valid across later inserts or a Clear.
type Snapshot struct {
	Record Record    `yaml:"record"`
	Height int       `yaml:"height"`
	Left   *Snapshot `yaml:"left,omitempty"`
	Right  *Snapshot `yaml:"right,omitempty"`
}

// Balance returns height(left) − height(right) for this snapshot node.
func (s *Snapshot) Balance() int {
	if s == nil {
		return 0
	}
	return s.Left.height() - s.Right.height()
}

// IsLeaf reports whether the node has no children.
func (s *Snapshot) IsLeaf() bool {
	return s != nil && s.Left == nil && s.Right == nil
}

// Len returns the number of nodes in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return 1 + s.Left.Len() + s.Right.Len()
}

// Walk visits the snapshot nodes in pre-order, passing each node's depth
// (the root has depth 0). Walking stops as soon as f returns false.
func (s *Snapshot) Walk(f func(s *Snapshot, depth int) bool) {
	if s == nil || f == nil {
		return
	}
	type entry struct {
		s     *Snapshot
		depth int
	}
	stack := []entry{{s, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(e.s, e.depth) {
			return
		}
		if e.s.Right != nil {
			stack = append(stack, entry{e.s.Right, e.depth + 1})
		}
		if e.s.Left != nil {
			stack = append(stack, entry{e.s.Left, e.depth + 1})
		}
	}
}

func (s *Snapshot) height() int {
	if s == nil {
		return 0
	}
	return s.Height
}

// snapshot copies the subtree at n. Heights are computed on the way up rather
// than read from the nodes, as BST nodes do not maintain them.
func snapshot(n *node) *Snapshot {
	if n == nil {
		return nil
	}
	s := &Snapshot{Record: n.rec}
	s.Left = snapshot(n.left)
	s.Right = snapshot(n.right)
	s.Height = 1 + max(s.Left.height(), s.Right.height())
	return s
}
