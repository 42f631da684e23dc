package ordtree

import "iter"

// traverse returns a sequence over the records of the subtree at root.
//
// All walks use an explicit stack instead of recursion, as an unbalanced BST
// may be as deep as it has nodes. The sequence reads the tree lazily; clients
// must not insert or clear while ranging over it.
func traverse(root *node, order Order) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		switch order {
		case Inorder:
			walkInorder(root, yield)
		case Preorder:
			walkPreorder(root, yield)
		case Postorder:
			walkPostorder(root, yield)
		default:
			T().Errorf("ordtree: traversal with unknown order %d", int(order))
		}
	}
}

func walkInorder(root *node, yield func(Record) bool) {
	var stack []*node
	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.rec) {
			return
		}
		n = n.right
	}
}

func walkPreorder(root *node, yield func(Record) bool) {
	if root == nil {
		return
	}
	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.rec) {
			return
		}
		// right goes first so that left is popped first
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

func walkPostorder(root *node, yield func(Record) bool) {
	var stack []*node
	var last *node // most recently yielded node
	n := root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		if !yield(top.rec) {
			return
		}
		last = top
		stack = stack[:len(stack)-1]
	}
}
