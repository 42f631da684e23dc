package treesvc

import (
	"io"

	"github.com/npillmayer/ordtree"
)

// Stats summarizes the state of a tree.
type Stats struct {
	Variant ordtree.Variant `yaml:"variant"`
	Count   int             `yaml:"count"`
	IsEmpty bool            `yaml:"is_empty"`
	Root    *ordtree.Record `yaml:"root,omitempty"`
	MinID   *ordtree.ID     `yaml:"min_id,omitempty"`
	MaxID   *ordtree.ID     `yaml:"max_id,omitempty"`
	AVL     *AVLStats       `yaml:"avl,omitempty"` // AVL trees only
}

// AVLStats are the statistics specific to balanced trees.
type AVLStats struct {
	Height   int  `yaml:"height"`
	Balanced bool `yaml:"balanced"`
}

// balanceChecker is implemented by trees which can verify their balance.
type balanceChecker interface {
	IsBalanced() bool
}

// Stats returns statistics for the tree of variant v. Minimum and maximum ID
// are taken from the first and last record of an in-order traversal.
func (s *Service) Stats(v ordtree.Variant) (Stats, error) {
	g, err := s.guarded(v)
	if err != nil {
		return Stats{}, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	st := Stats{
		Variant: v,
		Count:   g.tree.Len(),
		IsEmpty: g.tree.IsEmpty(),
	}
	if bc, ok := g.tree.(balanceChecker); ok {
		st.AVL = &AVLStats{Height: g.tree.Height(), Balanced: bc.IsBalanced()}
	}
	if st.IsEmpty {
		return st, nil
	}
	if root, ok := g.tree.Root(); ok {
		st.Root = &root
	}
	first := true
	var lo, hi ordtree.ID
	for rec := range g.tree.Traverse(ordtree.Inorder) {
		if first {
			lo, first = rec.ID, false
		}
		hi = rec.ID
	}
	st.MinID, st.MaxID = &lo, &hi
	return st, nil
}

// BalanceReport tells whether the AVL tree currently satisfies its balance
// invariant.
type BalanceReport struct {
	Balanced bool   `yaml:"balanced"`
	Height   int    `yaml:"height"`
	Count    int    `yaml:"count"`
	Message  string `yaml:"message"`
}

// CheckBalance verifies the balance of the AVL tree.
func (s *Service) CheckBalance() BalanceReport {
	g := s.trees[ordtree.AVLVariant]
	g.mu.RLock()
	defer g.mu.RUnlock()
	rep := BalanceReport{
		Height: g.tree.Height(),
		Count:  g.tree.Len(),
	}
	if bc, ok := g.tree.(balanceChecker); ok {
		rep.Balanced = bc.IsBalanced()
	}
	if rep.Balanced {
		rep.Message = "AVL tree is balanced"
	} else {
		rep.Message = "AVL tree is NOT balanced"
		tracer().Errorf("balance check failed for tree of %d records", rep.Count)
	}
	return rep
}

// Check verifies all structural invariants of the tree of variant v. A
// violation is reported as an error wrapping ordtree.ErrInvariant.
func (s *Service) Check(v ordtree.Variant) error {
	g, err := s.guarded(v)
	if err != nil {
		return err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Check()
}

// Dot writes the tree of variant v in Graphviz DOT format to w.
func (s *Service) Dot(v ordtree.Variant, w io.Writer) error {
	g, err := s.guarded(v)
	if err != nil {
		return err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return ordtree.Tree2Dot(g.tree, w)
}
