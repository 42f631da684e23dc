package ordtree

import (
	"errors"
	"fmt"
)

// ErrTreeCompleted signals that a builder has already completed a tree and
// it's illegal to further add records.
const ErrTreeCompleted = TreeError("forbidden to add records; tree has been completed")

// Builder stages records and finalizes them into a tree.
//
// The order in which records are inserted determines the shape of the tree
// (for BSTs dramatically so). Builder keeps that order explicit: prepended
// records go in before all appended ones.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended records in reverse logical order.
	front []Record
	// back keeps appended records in logical order.
	back []Record
	done bool
}

// NewBuilder creates a new and empty tree builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append stages records to be inserted after all currently staged ones.
// Records are validated; if one of them is invalid, none is staged.
func (b *Builder) Append(recs ...Record) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	if err := validateAll(recs); err != nil {
		return err
	}
	b.back = append(b.back, recs...)
	return nil
}

// Prepend stages records to be inserted before all currently staged ones.
// Records are validated; if one of them is invalid, none is staged.
func (b *Builder) Prepend(recs ...Record) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	if err := validateAll(recs); err != nil {
		return err
	}
	// front is stored in reverse logical order.
	for i := len(recs) - 1; i >= 0; i-- {
		b.front = append(b.front, recs[i])
	}
	return nil
}

// Len returns the number of staged records.
func (b *Builder) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

// Tree inserts all staged records, in logical order, into a new tree of
// variant v.
//
// Records with an ID seen before are rejected by the tree; Tree reports all
// of them in a joined error, but still returns the tree built from the
// accepted records. It is illegal to stage further records after Tree has
// been called.
func (b *Builder) Tree(v Variant) (Tree, error) {
	if b == nil {
		return nil, ErrIllegalArguments
	}
	tree, err := New(v)
	if err != nil {
		return nil, err
	}
	b.done = true
	var errs []error
	for _, rec := range b.ordered() {
		if e := tree.Insert(rec); e != nil {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		T().Infof("tree builder: %d of %d records rejected", len(errs), b.Len())
	}
	return tree, errors.Join(errs...)
}

// Reset drops the staged records and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	if b == nil {
		return
	}
	b.front = nil
	b.back = nil
	b.done = false
}

func (b *Builder) ordered() []Record {
	out := make([]Record, 0, b.Len())
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	return append(out, b.back...)
}

func validateAll(recs []Record) error {
	for i, rec := range recs {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
