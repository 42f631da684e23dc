package ordtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labelled with their ID; AVL trees additionally show the balance
// factor. Missing children are drawn as small empty circles, so that left and
// right stay distinguishable for nodes with a single child.
func Tree2Dot(tree Tree, w io.Writer) error {
	if tree == nil {
		return ErrIllegalArguments
	}
	var bf strings.Builder
	bf.WriteString("strict digraph {\n")
	bf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	withBalance := tree.Variant() == AVLVariant
	var nodelist, edgelist strings.Builder
	ids := 0
	var emit func(s *Snapshot) int
	emit = func(s *Snapshot) int {
		ids++
		ID := ids
		label := fmt.Sprintf("%d", s.Record.ID)
		if withBalance {
			label = fmt.Sprintf("%d\\n%+d", s.Record.ID, s.Balance())
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(s))
		if s.IsLeaf() {
			return ID
		}
		for _, child := range []*Snapshot{s.Left, s.Right} {
			if child == nil {
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", ID, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", ID, ID)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, emit(child))
		}
		return ID
	}
	if root := tree.Snapshot(); root != nil {
		emit(root)
	}
	bf.WriteString(nodelist.String())
	bf.WriteString(edgelist.String())
	bf.WriteString("}\n")
	if _, err := io.WriteString(w, bf.String()); err != nil {
		T().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(s *Snapshot) string {
	st := ",style=filled"
	if s.IsLeaf() {
		st += ",shape=box"
	} else {
		st += ",color=black,shape=circle"
	}
	bal := s.Balance()
	if bal < -1 || bal > 1 {
		st += fmt.Sprintf(",fillcolor=\"%s\"", hlcolor)
	} else {
		st += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(s.Height, len(hexcolors)-1)])
	}
	return st
}

// hlcolor marks nodes out of balance
const hlcolor = "#ff6600"

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
