package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `records:
  - id: 50
    name: Lucas
    age: 7
  - id: 25
    name: Ana
    age: 5
  - id: 50
    name: Twin
    age: 7
`

func TestDecode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	set, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, set.Records, 3)
	assert.Equal(t, ordtree.Record{ID: 25, Name: "Ana", Age: 5}, set.Records[1])
	//
	tree, err := set.Tree(ordtree.AVLVariant)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ordtree.ErrDuplicateKey))
	assert.Equal(t, 2, tree.Len())
	rec, err := tree.Search(50)
	require.NoError(t, err)
	assert.Equal(t, "Lucas", rec.Name)
}

func TestDecodeReadsIncrementally(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	set, err := Decode(iotest.OneByteReader(strings.NewReader(sample)))
	require.NoError(t, err)
	assert.Len(t, set.Records, 3)
	//
	_, err = Decode(iotest.ErrReader(errors.New("disk on fire")))
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	set, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, set.Records)
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode(strings.NewReader("records: [{id: 1, name: Ana, age: 5, size: 3}]"))
	assert.True(t, errors.Is(err, ErrMalformed), "unknown field must be rejected")
	//
	_, err = Decode(strings.NewReader("records: {id: 1}"))
	assert.True(t, errors.Is(err, ErrMalformed))
	//
	_, err = Decode(strings.NewReader("records: [{id: 0, name: Ana, age: 5}]"))
	assert.True(t, errors.Is(err, ordtree.ErrValidation))
	//
	_, err = Decode(strings.NewReader("records: [{id: 2, name: '', age: 5}]"))
	assert.True(t, errors.Is(err, ordtree.ErrValidation))
}

func TestEncodeLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	set := Set{Records: []ordtree.Record{
		{ID: 3, Name: "Zoë", Age: 11},
		{ID: 1, Name: "Ana", Age: 4},
	}}
	path := filepath.Join(t.TempDir(), "children.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Encode(f, set))
	require.NoError(t, f.Close())
	//
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, set, loaded)
	//
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
