package treesvc

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordtree"
)

// ErrClosed is returned for subscriptions to a closed service.
var ErrClosed = errors.New("treesvc: service closed")

// Service holds one tree per variant and serializes access to them.
// All methods are safe for concurrent use.
type Service struct {
	cfg   Config
	trees map[ordtree.Variant]*guardedTree
	cast  *caster.Caster
	seq   atomic.Uint64 // event sequence
}

// guardedTree is one tree together with its lock and lookup filter.
type guardedTree struct {
	mu     sync.RWMutex
	tree   ordtree.Tree
	filter *lookupFilter
}

// New creates a service with an empty tree for each variant.
func New(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	s := &Service{
		cfg:   cfg,
		trees: make(map[ordtree.Variant]*guardedTree, len(ordtree.Variants)),
		cast:  caster.New(context.Background()),
	}
	for _, v := range ordtree.Variants {
		tree, err := ordtree.New(v)
		if err != nil {
			return nil, err
		}
		s.trees[v] = &guardedTree{
			tree:   tree,
			filter: newLookupFilter(cfg.FilterCapacity, cfg.FilterFalsePositive),
		}
	}
	tracer().Infof("tree service started, lookup filter capacity %d", cfg.FilterCapacity)
	return s, nil
}

// Close ends all event subscriptions. The trees stay usable.
func (s *Service) Close() {
	s.cast.Close()
}

func (s *Service) guarded(v ordtree.Variant) (*guardedTree, error) {
	g, ok := s.trees[v]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tree variant %d", ordtree.ErrIllegalArguments, v)
	}
	return g, nil
}

// Insert validates a record and inserts it into the tree of variant v.
// It returns the inserted record, or fails with ordtree.ErrValidation or
// ordtree.ErrDuplicateKey.
func (s *Service) Insert(v ordtree.Variant, id ordtree.ID, name string, age int) (ordtree.Record, error) {
	g, err := s.guarded(v)
	if err != nil {
		return ordtree.Record{}, err
	}
	rec, err := ordtree.NewRecord(id, name, age)
	if err != nil {
		return ordtree.Record{}, err
	}
	g.mu.Lock()
	err = g.tree.Insert(rec)
	if err == nil {
		g.filter.add(rec.ID)
	}
	count := g.tree.Len()
	seq := s.seq.Add(1)
	g.mu.Unlock()
	if err != nil {
		tracer().P("tree", v).Infof("insert rejected: %v", err)
		s.publish(Event{Kind: Rejected, Variant: v, Record: rec, Count: count, Err: err, Seq: seq})
		return ordtree.Record{}, err
	}
	s.publish(Event{Kind: Inserted, Variant: v, Record: rec, Count: count, Seq: seq})
	return rec, nil
}

// Load inserts a batch of records into the tree of variant v, in order, and
// returns the number of records inserted. Invalid or duplicate records are
// skipped and reported together in the returned error.
func (s *Service) Load(v ordtree.Variant, recs []ordtree.Record) (int, error) {
	var errs []error
	inserted := 0
	for _, r := range recs {
		if _, err := s.Insert(v, r.ID, r.Name, r.Age); err != nil {
			errs = append(errs, err)
			continue
		}
		inserted++
	}
	return inserted, errors.Join(errs...)
}

// Search returns the record with a given ID, or ordtree.ErrNotFound.
func (s *Service) Search(v ordtree.Variant, id ordtree.ID) (ordtree.Record, error) {
	g, err := s.guarded(v)
	if err != nil {
		return ordtree.Record{}, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.filter.mayContain(id) {
		return ordtree.Record{}, fmt.Errorf("%w: id %d", ordtree.ErrNotFound, id)
	}
	return g.tree.Search(id)
}

// ListAscending returns all records ordered by ascending ID.
func (s *Service) ListAscending(v ordtree.Variant) ([]ordtree.Record, error) {
	return s.Traverse(v, ordtree.Inorder)
}

// Traverse returns all records in a given traversal order.
func (s *Service) Traverse(v ordtree.Variant, order ordtree.Order) ([]ordtree.Record, error) {
	g, err := s.guarded(v)
	if err != nil {
		return nil, err
	}
	switch order {
	case ordtree.Inorder, ordtree.Preorder, ordtree.Postorder:
	default:
		return nil, fmt.Errorf("%w: unknown traversal order %d", ordtree.ErrIllegalArguments, order)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	recs := make([]ordtree.Record, 0, g.tree.Len())
	return slices.AppendSeq(recs, g.tree.Traverse(order)), nil
}

// TreeView is a detached view of a whole tree. Root is nil for an empty tree.
type TreeView struct {
	Variant ordtree.Variant   `yaml:"variant"`
	Root    *ordtree.Snapshot `yaml:"root"`
	Count   int               `yaml:"count"`
}

// IsEmpty reports whether the viewed tree has been empty.
func (tv TreeView) IsEmpty() bool {
	return tv.Root == nil
}

// Snapshot returns a copy of the tree's current shape.
func (s *Service) Snapshot(v ordtree.Variant) (TreeView, error) {
	g, err := s.guarded(v)
	if err != nil {
		return TreeView{}, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return TreeView{Variant: v, Root: g.tree.Snapshot(), Count: g.tree.Len()}, nil
}

// Count returns the number of records in the tree of variant v.
func (s *Service) Count(v ordtree.Variant) (int, error) {
	g, err := s.guarded(v)
	if err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Len(), nil
}

// Clear empties the tree of variant v and returns the number of records
// removed.
func (s *Service) Clear(v ordtree.Variant) (int, error) {
	g, err := s.guarded(v)
	if err != nil {
		return 0, err
	}
	g.mu.Lock()
	removed := g.tree.Clear()
	g.filter.reset()
	seq := s.seq.Add(1)
	g.mu.Unlock()
	tracer().P("tree", v).Infof("cleared %d records", removed)
	s.publish(Event{Kind: Cleared, Variant: v, Count: removed, Seq: seq})
	return removed, nil
}
