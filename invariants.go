package ordtree

import "fmt"

// checkOrder verifies the ordering invariant, which holds iff an in-order walk
// yields strictly ascending IDs. It returns the number of nodes walked.
func checkOrder(root *node) (int, error) {
	var cnt int
	var prev ID
	var err error
	walkInorder(root, func(rec Record) bool {
		if cnt > 0 && rec.ID <= prev {
			err = fmt.Errorf("%w: id %d follows id %d in order", ErrInvariant, rec.ID, prev)
			return false
		}
		prev = rec.ID
		cnt++
		return true
	})
	return cnt, err
}

func checkCount(root *node, count, reachable int) error {
	if count != reachable {
		return fmt.Errorf("%w: count is %d, but %d nodes are reachable", ErrInvariant, count, reachable)
	}
	if (count == 0) != (root == nil) {
		return fmt.Errorf("%w: count %d inconsistent with root", ErrInvariant, count)
	}
	return nil
}

// checkHeights recomputes subtree heights bottom-up and compares them with the
// stored ones, flagging any node out of balance on the way.
func checkHeights(n *node) (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := checkHeights(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkHeights(n.right)
	if err != nil {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, fmt.Errorf("%w: node %d stores height %d, has %d", ErrInvariant, n.rec.ID, n.height, h)
	}
	if lh-rh < -1 || lh-rh > 1 {
		return 0, fmt.Errorf("%w: node %d has balance factor %d", ErrInvariant, n.rec.ID, lh-rh)
	}
	return h, nil
}
