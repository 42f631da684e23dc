/*
Package fixture reads and writes sets of records in YAML.

A fixture file lists records to be loaded into a tree, in insertion order:

	records:
	  - id: 50
	    name: Lucas
	    age: 7
	  - id: 25
	    name: Ana
	    age: 5

Fixtures are validated when read. Duplicate IDs are not an error at this
level, as inserting them into a tree is well defined (they are rejected).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

// ErrMalformed is flagged for input which is not a well-formed fixture.
var ErrMalformed = errors.New("malformed fixture")

// Set is an ordered set of records.
type Set struct {
	Records []ordtree.Record `yaml:"records"`
}

// Decode reads a fixture from r and validates every record in it.
func Decode(r io.Reader) (Set, error) {
	var set Set
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return Set{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i, rec := range set.Records {
		if err := rec.Validate(); err != nil {
			return Set{}, fmt.Errorf("fixture record %d: %w", i+1, err)
		}
	}
	tracer().Debugf("fixture: decoded %d records", len(set.Records))
	return set, nil
}

// Load reads the fixture file at path.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, err
	}
	defer f.Close()
	set, err := Decode(f)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Encode writes set to w in fixture format.
func Encode(w io.Writer, set Set) error {
	data, err := yaml.Marshal(&set)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Tree builds a tree of variant v from the records of set, in order.
// Duplicate IDs are rejected by the tree and reported as a joined error,
// alongside the tree built from the remaining records.
func (set Set) Tree(v ordtree.Variant) (ordtree.Tree, error) {
	b := ordtree.NewBuilder()
	if err := b.Append(set.Records...); err != nil {
		return nil, err
	}
	return b.Tree(v)
}
