package ordtree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := NewAVL()
	insertAll(t, tree, 20, 10, 30, 25)
	var buf bytes.Buffer
	if err := Tree2Dot(tree, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a DOT digraph")
	}
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges (3 nodes + 1 placeholder), have %d", n)
	}
	if !strings.Contains(dot, `label="20\n-1"`) {
		t.Errorf("expected root 20 labelled with balance -1")
	}
}

func TestTree2DotEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Tree2Dot(NewBST(), &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Errorf("empty tree must not produce edges")
	}
	if err := Tree2Dot(nil, &buf); err == nil {
		t.Errorf("expected error for nil tree")
	}
}
