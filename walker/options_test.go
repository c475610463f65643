package walker

import (
	"testing"

	"github.com/erraggy/oasmerge/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkWithOptions_NoInput(t *testing.T) {
	err := WalkWithOptions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input source specified")
}

func TestWalkWithOptions_MultipleInputs(t *testing.T) {
	doc := testDocument()
	err := WalkWithOptions(
		WithDocument(doc),
		WithParsed(&parser.ParseResult{Document: doc}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple input sources")
}

func TestWalkWithOptions_ParsedNilDocument(t *testing.T) {
	err := WalkWithOptions(WithParsed(&parser.ParseResult{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil Document")
}

func TestWalkWithOptions_Parsed(t *testing.T) {
	var titles []string
	err := WalkWithOptions(
		WithParsed(&parser.ParseResult{Document: testDocument()}),
		WithDocumentHandler(func(wc *WalkContext, doc *parser.Document) Action {
			titles = append(titles, doc.Info.Title)
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Test API"}, titles)
}

func TestWithMaxSchemaDepth(t *testing.T) {
	deep := &parser.Schema{Type: "object"}
	cur := deep
	for range 5 {
		next := &parser.Schema{Type: "object"}
		cur.Properties = map[string]*parser.Schema{"child": next}
		cur = next
	}
	doc := &parser.Document{
		OpenAPI:    "3.0.0",
		Info:       &parser.Info{Title: "t", Version: "1"},
		Components: &parser.Components{Schemas: map[string]*parser.Schema{"Deep": deep}},
	}

	var visited int
	var skipped []string
	err := WalkWithOptions(
		WithDocument(doc),
		WithMaxSchemaDepth(2),
		WithSchemaHandler(func(wc *WalkContext, schema *parser.Schema) Action {
			visited++
			return Continue
		}),
		WithSchemaSkippedHandler(func(wc *WalkContext, reason string, schema *parser.Schema) {
			skipped = append(skipped, reason)
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, 3, visited)
	assert.Equal(t, []string{"depth"}, skipped)
}

func TestWithMaxSchemaDepth_IgnoresNegative(t *testing.T) {
	w := New()
	WithMaxSchemaDepth(-3)(w)
	assert.Equal(t, 100, w.maxDepth)
}

func TestWithMaxSchemaDepth_ZeroVisitsEverySchema(t *testing.T) {
	root := &parser.Schema{Type: "object"}
	cur := root
	for range 150 {
		next := &parser.Schema{Type: "object"}
		cur.Properties = map[string]*parser.Schema{"child": next}
		cur = next
	}
	cur.Ref = "#/components/schemas/Leaf"
	doc := &parser.Document{
		OpenAPI:    "3.0.0",
		Info:       &parser.Info{Title: "t", Version: "1"},
		Components: &parser.Components{Schemas: map[string]*parser.Schema{"Deep": root}},
	}

	var refs []string
	var skipped int
	err := WalkWithOptions(
		WithDocument(doc),
		WithMaxSchemaDepth(0),
		WithRefHandler(func(wc *WalkContext, ref *RefInfo) Action {
			refs = append(refs, ref.Ref)
			return Continue
		}),
		WithSchemaSkippedHandler(func(wc *WalkContext, reason string, schema *parser.Schema) {
			skipped++
		}),
	)

	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, []string{"#/components/schemas/Leaf"}, refs)
}

func TestWalk_SchemaCycle(t *testing.T) {
	node := &parser.Schema{Type: "object"}
	node.Properties = map[string]*parser.Schema{"next": node}
	doc := &parser.Document{
		OpenAPI:    "3.0.0",
		Info:       &parser.Info{Title: "t", Version: "1"},
		Components: &parser.Components{Schemas: map[string]*parser.Schema{"Node": node}},
	}

	var reasons []string
	err := Walk(doc, WithSchemaSkippedHandler(func(wc *WalkContext, reason string, schema *parser.Schema) {
		reasons = append(reasons, reason)
	}))

	require.NoError(t, err)
	assert.Equal(t, []string{"cycle"}, reasons)
}
