package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/oasmerge/parser"
)

// WithDocument specifies a document to walk.
func WithDocument(doc *parser.Document) Option {
	return func(w *Walker) {
		w.doc = doc
	}
}

// WithParsed specifies a pre-parsed result to walk.
func WithParsed(result *parser.ParseResult) Option {
	return func(w *Walker) {
		w.parsed = result
	}
}

// WithMaxSchemaDepth bounds schema nesting. Zero removes the bound so every
// schema is visited; negative values keep the default of 100.
func WithMaxSchemaDepth(depth int) Option {
	return func(w *Walker) {
		if depth >= 0 {
			w.maxDepth = depth
		}
	}
}

// WithUserContext attaches ctx to the walk. Handlers see it through
// wc.Context(), and the walk ends with ctx.Err() once it is cancelled;
// cancellation is checked between path items and before components.
func WithUserContext(ctx context.Context) Option {
	return func(w *Walker) {
		w.userCtx = ctx
	}
}

// WithRefHandler sets a handler for every $ref string. Discriminator
// mappings are not reported. RefInfo.SetRef rewrites the reference.
func WithRefHandler(fn RefHandler) Option {
	return func(w *Walker) {
		w.onRef = fn
	}
}

// WalkWithOptions is Walk with the document supplied as an option, either
// WithDocument or WithParsed but not both.
//
//	walker.WalkWithOptions(
//	    walker.WithDocument(doc),
//	    walker.WithSchemaHandler(func(wc *walker.WalkContext, s *parser.Schema) walker.Action {
//	        fmt.Println(wc.JSONPath)
//	        return walker.Continue
//	    }),
//	)
func WalkWithOptions(opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}

	if w.parsed == nil && w.doc == nil {
		return fmt.Errorf("walker: no input source specified: use WithDocument or WithParsed")
	}
	if w.parsed != nil && w.doc != nil {
		return fmt.Errorf("walker: multiple input sources specified: use only one")
	}

	doc := w.doc
	if w.parsed != nil {
		doc = w.parsed.Document
	}
	if doc == nil {
		return fmt.Errorf("walker: nil Document")
	}
	return w.walk(doc)
}
