/*
Package console renders trees and record lists for terminals.

Printer draws the shape of a tree as an indented outline with box-drawing
connectors. Every node shows its record; for balanced trees the subtree height
and balance factor may be shown as well, with nodes out of balance highlighted.

Table prints a list of records (for example the result of a traversal) in
aligned columns. Column widths are measured in terminal cells, so that names
in scripts with wide characters line up, and overlong names are wrapped at
legal line-break opportunities.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}
