package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

const (
	idColumn  = 8
	ageColumn = 4
	minName   = 10
)

// Table writes records as rows of ID, name and age. The name column is as
// wide as the widest name, but not wider than the line width permits; longer
// names are wrapped onto continuation lines.
func (p *Printer) Table(w io.Writer, recs []ordtree.Record) error {
	linewidth := p.LineWidth
	if linewidth <= 0 {
		linewidth = TerminalWidth()
	}
	namewidth := minName
	for _, r := range recs {
		namewidth = max(namewidth, p.Width(r.Name))
	}
	namewidth = min(namewidth, max(minName, linewidth-idColumn-ageColumn-4))
	tracer().P("format", "console").Debugf("table name column is %d en", namewidth)
	var bf strings.Builder
	fmt.Fprintf(&bf, "%*s  %s  %*s\n", idColumn, "ID", pad("Name", 4, namewidth), ageColumn, "Age")
	bf.WriteString(strings.Repeat("─", idColumn+namewidth+ageColumn+4))
	bf.WriteByte('\n')
	for _, r := range recs {
		lines := p.wrap(r.Name, namewidth)
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintf(&bf, "%s  %s  %s\n",
					p.paint(IDRole, fmt.Sprintf("%*d", idColumn, r.ID)),
					p.paint(NameRole, pad(line, p.Width(line), namewidth)),
					p.paint(AgeRole, fmt.Sprintf("%*d", ageColumn, r.Age)))
				continue
			}
			fmt.Fprintf(&bf, "%*s  %s\n", idColumn, "", p.paint(NameRole, line))
		}
	}
	_, err := io.WriteString(w, bf.String())
	return err
}

func pad(s string, width, target int) string {
	if width >= target {
		return s
	}
	return s + strings.Repeat(" ", target-width)
}

// wrap breaks text into lines of at most linewidth en, using the first-fit
// strategy at UAX#14 line-break opportunities. A single segment wider than
// linewidth gets a line of its own.
func (p *Printer) wrap(text string, linewidth int) []string {
	if p.Width(text) <= linewidth {
		return []string{text}
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	var lines []string
	var line strings.Builder
	spaceleft := linewidth
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := uax11.StringWidth(grapheme.StringFromString(frag), p.context)
		if fraglen > spaceleft && line.Len() > 0 {
			lines = append(lines, strings.TrimRight(line.String(), " "))
			line.Reset()
			spaceleft = linewidth
		}
		line.WriteString(frag)
		spaceleft -= fraglen
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines
}
