package merger

import (
	"context"
	"errors"
	"testing"

	"github.com/erraggy/oasmerge/oaserrors"
	"github.com/erraggy/oasmerge/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	doc := &parser.Document{OpenAPI: "3.0.3"}

	t.Run("no inputs", func(t *testing.T) {
		_, err := applyOptions(WithMaxDocuments(3))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	})

	t.Run("inputs keep option order", func(t *testing.T) {
		cfg, err := applyOptions(
			WithNamedDocument("a.yaml", doc, "/a"),
			WithInputs(Input{Document: doc, Name: "b.yaml"}),
			WithDocument(doc, ""),
		)
		require.NoError(t, err)
		require.Len(t, cfg.inputs, 3)
		assert.Equal(t, "a.yaml", cfg.inputs[0].Name)
		assert.Equal(t, "/a", cfg.inputs[0].ContextRoot)
		assert.Equal(t, "b.yaml", cfg.inputs[1].Name)
		assert.Empty(t, cfg.inputs[2].Name)
	})

	t.Run("parsed results are named by source path", func(t *testing.T) {
		cfg, err := applyOptions(WithParsed(&parser.ParseResult{Document: doc, SourcePath: "pets.yaml"}))
		require.NoError(t, err)
		assert.Equal(t, "pets.yaml", cfg.inputs[0].Name)
	})

	var nilCtx context.Context
	invalid := []struct {
		name string
		opt  Option
	}{
		{"nil document", WithNamedDocument("x.yaml", nil, "")},
		{"parse result without document", WithParsed(&parser.ParseResult{})},
		{"nil parse result", WithParsed(nil)},
		{"empty merged title", WithMergedInfo("", "1.0")},
		{"empty merged version", WithMergedInfo("API", "")},
		{"negative max documents", WithMaxDocuments(-1)},
		{"negative max schema depth", WithMaxSchemaDepth(-1)},
		{"nil context", WithContext(nilCtx)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := applyOptions(WithDocument(doc, ""), tt.opt)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		})
	}
}

func TestMergeWithOptions(t *testing.T) {
	t.Run("invalid options", func(t *testing.T) {
		_, err := MergeWithOptions()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "merger: invalid options")
	})

	t.Run("options override config", func(t *testing.T) {
		a := parseDoc(t, petsA)
		b := parseDoc(t, petsBDifferent)
		_, err := MergeWithOptions(
			WithDocument(a, ""),
			WithDocument(b, ""),
			WithConfig(Config{MaxDocuments: 5}),
			WithMaxDocuments(1),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := MergeWithOptions(
			WithDocument(parseDoc(t, petsA), ""),
			WithDocument(parseDoc(t, petsBDifferent), ""),
			WithContext(ctx),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("config applies", func(t *testing.T) {
		result, err := MergeWithOptions(
			WithDocument(parseDoc(t, petsA), ""),
			WithDocument(parseDoc(t, `openapi: "3.0.3"
info: {title: Other, version: "1"}
paths:
  /other: {}
`), ""),
			WithConfig(Config{MergedTitle: "Configured", MergedVersion: "9"}),
			WithLogger(parser.NopLogger{}),
		)
		require.NoError(t, err)
		assert.Equal(t, "Configured", result.Document.Info.Title)
		assert.Equal(t, "9", result.Document.Info.Version)
	})
}

func TestValueOrDefault(t *testing.T) {
	n := 7
	assert.Equal(t, 7, valueOrDefault(&n, 3))
	assert.Equal(t, 3, valueOrDefault(nil, 3))
}
