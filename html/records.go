package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/ordtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RecordsFromHTML reads records from the rows of HTML tables in input.
// A row is expected to have the cells ID, name and age, in this order.
// Header rows (made of <th> cells) are skipped, as are rows with fewer than
// three cells.
//
// Records are validated. The first row not forming a valid record stops
// reading with an error wrapping ordtree.ErrValidation.
func RecordsFromHTML(input io.Reader) ([]ordtree.Record, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	var recs []ordtree.Record
	rowno := 0
	for _, row := range rows(doc) {
		cells := cellTexts(row)
		if len(cells) < 3 {
			continue
		}
		rowno++
		rec, err := recordFromCells(cells)
		if err != nil {
			return recs, fmt.Errorf("table row %d: %w", rowno, err)
		}
		recs = append(recs, rec)
	}
	tracer().Debugf("html: read %d records from table", len(recs))
	return recs, nil
}

func recordFromCells(cells []string) (ordtree.Record, error) {
	id, err := strconv.ParseInt(cells[0], 10, 64)
	if err != nil {
		return ordtree.Record{}, fmt.Errorf("%w: id %q is not a number", ordtree.ErrValidation, cells[0])
	}
	age, err := strconv.Atoi(cells[2])
	if err != nil {
		return ordtree.Record{}, fmt.Errorf("%w: age %q is not a number", ordtree.ErrValidation, cells[2])
	}
	return ordtree.NewRecord(ordtree.ID(id), cells[1], age)
}

// rows collects all <tr> elements of the document in document order.
func rows(doc *html.Node) []*html.Node {
	var trs []*html.Node
	stack := []*html.Node{doc}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			trs = append(trs, n)
			continue
		}
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return trs
}

// cellTexts returns the inner text of the <td> cells of a row.
func cellTexts(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Td {
			continue
		}
		var b strings.Builder
		collectText(c, &b)
		cells = append(cells, strings.TrimSpace(b.String()))
	}
	return cells
}

// collectText appends the textual content of an element and all of its
// descendents, similar to innerText in JavaScript.
func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
