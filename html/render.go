package html

import (
	"fmt"
	"io"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/treesvc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes the tree of view as an HTML fragment:
//
//	<div class="ordtree" data-variant="avl" data-count="3">
//	  <ul><li><span class="record" data-id="2">2 Ana (4)</span>
//	    <ul><li class="left">…</li><li class="right">…</li></ul>
//	  </li></ul>
//	</div>
//
// Every list item carries the side it hangs on in its class, so that a
// single child stays distinguishable as left or right. An empty tree renders
// as an empty container.
func Render(w io.Writer, view treesvc.TreeView) error {
	div := element(atom.Div,
		"class", "ordtree",
		"data-variant", view.Variant.String(),
		"data-count", fmt.Sprintf("%d", view.Count))
	if view.Root != nil {
		ul := element(atom.Ul)
		ul.AppendChild(item(view.Root, "root", view.Variant == ordtree.AVLVariant))
		div.AppendChild(ul)
	}
	if err := html.Render(w, div); err != nil {
		tracer().Errorf("html: cannot render tree: %v", err)
		return err
	}
	return nil
}

func item(s *ordtree.Snapshot, side string, withBalance bool) *html.Node {
	li := element(atom.Li, "class", side)
	span := element(atom.Span,
		"class", "record",
		"data-id", fmt.Sprintf("%d", s.Record.ID))
	if withBalance {
		span.Attr = append(span.Attr, html.Attribute{Key: "data-balance", Val: fmt.Sprintf("%d", s.Balance())})
	}
	span.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprintf("%d %s (%d)", s.Record.ID, s.Record.Name, s.Record.Age),
	})
	li.AppendChild(span)
	if s.IsLeaf() {
		return li
	}
	ul := element(atom.Ul)
	if s.Left != nil {
		ul.AppendChild(item(s.Left, "left", withBalance))
	}
	if s.Right != nil {
		ul.AppendChild(item(s.Right, "right", withBalance))
	}
	li.AppendChild(ul)
	return li
}

// element creates an element node with attributes given as key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}
