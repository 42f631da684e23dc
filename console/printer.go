package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Role is the part of the output a color applies to.
type Role int

// Output roles
const (
	IDRole Role = iota
	NameRole
	AgeRole
	AnnotationRole
	AlertRole
)

// Palette maps output roles to colors. Roles without a color are printed plain.
type Palette map[Role]*color.Color

// DefaultPalette returns the palette used when a printer is created without one.
func DefaultPalette() Palette {
	return Palette{
		IDRole:         color.New(color.FgCyan, color.Bold),
		AgeRole:        color.New(color.FgYellow),
		AnnotationRole: color.New(color.Faint),
		AlertRole:      color.New(color.FgRed, color.Bold),
	}
}

// Printer outputs trees and tables to a console with a fixed width font.
type Printer struct {
	// Annotate adds subtree height and balance factor to every tree node.
	Annotate bool
	// LineWidth is the target width of table output in en, i.e. fixed-width
	// character cells. 0 lets Table use TerminalWidth.
	LineWidth int
	colors    Palette
	context   *uax11.Context
}

var setupGraphemes sync.Once

// NewPrinter creates a printer. If colors is nil, output is not colored.
// context tells how to measure ambiguous-width characters; nil selects
// uax11.LatinContext.
func NewPrinter(colors Palette, context *uax11.Context) *Printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &Printer{
		colors:  colors,
		context: uax11.LatinContext,
	}
	if context != nil {
		p.context = context
	}
	return p
}

func (p *Printer) paint(role Role, s string) string {
	if p.colors == nil {
		return s
	}
	if c, ok := p.colors[role]; ok && c != nil {
		return c.Sprint(s)
	}
	return s
}

// Width returns the number of fixed-width cells s occupies on a console.
func (p *Printer) Width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.context)
}

// Tree writes the outline of the tree at root to w:
//
//	50 Lucas (7)
//	├─L 25 Ana (5)
//	│   └─L 10 Tom (3)
//	└─R 75 Eva (8)
//
// A nil root prints as "(empty)".
func (p *Printer) Tree(w io.Writer, root *ordtree.Snapshot) error {
	if root == nil {
		_, err := io.WriteString(w, p.paint(AnnotationRole, "(empty)")+"\n")
		return err
	}
	type entry struct {
		s       *ordtree.Snapshot
		prefix  string // indentation inherited from ancestors
		marker  string // connector and side, empty for the root
		isFinal bool   // last child of its parent
	}
	var bf strings.Builder
	stack := []entry{{s: root, isFinal: true}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		bf.WriteString(e.prefix)
		bf.WriteString(e.marker)
		bf.WriteString(p.nodeLabel(e.s))
		bf.WriteByte('\n')
		childPrefix := e.prefix
		if e.marker != "" {
			if e.isFinal {
				childPrefix += "    "
			} else {
				childPrefix += "│   "
			}
		}
		var children []entry
		if e.s.Left != nil {
			children = append(children, entry{s: e.s.Left, prefix: childPrefix, marker: "L "})
		}
		if e.s.Right != nil {
			children = append(children, entry{s: e.s.Right, prefix: childPrefix, marker: "R "})
		}
		for i := range children {
			children[i].isFinal = i == len(children)-1
			if children[i].isFinal {
				children[i].marker = "└─" + children[i].marker
			} else {
				children[i].marker = "├─" + children[i].marker
			}
		}
		// push in reverse, so that left is printed first
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	_, err := io.WriteString(w, bf.String())
	if err != nil {
		tracer().Errorf("console: cannot print tree: %v", err)
	}
	return err
}

func (p *Printer) nodeLabel(s *ordtree.Snapshot) string {
	label := fmt.Sprintf("%s %s (%s)",
		p.paint(IDRole, fmt.Sprintf("%d", s.Record.ID)),
		p.paint(NameRole, s.Record.Name),
		p.paint(AgeRole, fmt.Sprintf("%d", s.Record.Age)))
	if !p.Annotate {
		return label
	}
	bal := s.Balance()
	note := fmt.Sprintf("[h=%d bf=%+d]", s.Height, bal)
	if bal < -1 || bal > 1 {
		return label + " " + p.paint(AlertRole, note)
	}
	return label + " " + p.paint(AnnotationRole, note)
}
