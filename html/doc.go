/*
Package html bridges between trees and HTML.

Render writes a tree view as a fragment of nested lists, which mirrors the
shape of the tree and may be embedded in any page. RecordsFromHTML reads
records from the rows of an HTML table, which is a convenient way to load
fixtures from exported spreadsheets or web pages.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}
