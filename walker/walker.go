package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/oasmerge/parser"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Handler types for each OAS node type.
// Each handler receives the walk context and the node, and returns an Action.
// Handlers may mutate the node they receive.

// DocumentHandler is called for the root document.
type DocumentHandler func(wc *WalkContext, doc *parser.Document) Action

// ServerHandler is called for each Server at document, path item, operation, and link level.
type ServerHandler func(wc *WalkContext, server *parser.Server) Action

// PathItemHandler is called for each PathItem, including those nested in callbacks.
type PathItemHandler func(wc *WalkContext, pathItem *parser.PathItem) Action

// OperationHandler is called for each Operation. wc.Method holds the HTTP method.
type OperationHandler func(wc *WalkContext, op *parser.Operation) Action

// ParameterHandler is called for each Parameter.
type ParameterHandler func(wc *WalkContext, param *parser.Parameter) Action

// RequestBodyHandler is called for each RequestBody.
type RequestBodyHandler func(wc *WalkContext, reqBody *parser.RequestBody) Action

// ResponseHandler is called for each Response. wc.StatusCode holds the status code.
type ResponseHandler func(wc *WalkContext, resp *parser.Response) Action

// SchemaHandler is called for each Schema, including nested schemas.
type SchemaHandler func(wc *WalkContext, schema *parser.Schema) Action

// SecuritySchemeHandler is called for each SecurityScheme.
type SecuritySchemeHandler func(wc *WalkContext, scheme *parser.SecurityScheme) Action

// HeaderHandler is called for each Header.
type HeaderHandler func(wc *WalkContext, header *parser.Header) Action

// MediaTypeHandler is called for each MediaType.
type MediaTypeHandler func(wc *WalkContext, mt *parser.MediaType) Action

// LinkHandler is called for each Link.
type LinkHandler func(wc *WalkContext, link *parser.Link) Action

// CallbackHandler is called for each Callback.
type CallbackHandler func(wc *WalkContext, callback *parser.Callback) Action

// ExampleHandler is called for each Example.
type ExampleHandler func(wc *WalkContext, example *parser.Example) Action

// SchemaSkippedHandler is called when a schema is skipped due to depth limit or cycle detection.
// The reason parameter is either "depth" when the schema exceeds maxDepth,
// or "cycle" when the schema was already visited on the current descent.
type SchemaSkippedHandler func(wc *WalkContext, reason string, schema *parser.Schema)

// Walker traverses OpenAPI documents and calls handlers for each node type.
type Walker struct {
	// Handlers
	onDocument       DocumentHandler
	onServer         ServerHandler
	onPathItem       PathItemHandler
	onOperation      OperationHandler
	onParameter      ParameterHandler
	onRequestBody    RequestBodyHandler
	onResponse       ResponseHandler
	onSchema         SchemaHandler
	onSecurityScheme SecuritySchemeHandler
	onHeader         HeaderHandler
	onMediaType      MediaTypeHandler
	onLink           LinkHandler
	onCallback       CallbackHandler
	onExample        ExampleHandler
	onSchemaSkipped  SchemaSkippedHandler
	onRef            RefHandler

	// Input
	doc    *parser.Document
	parsed *parser.ParseResult

	// Configuration
	maxDepth int
	userCtx  context.Context

	// Internal state
	visitedSchemas map[*parser.Schema]bool
	stopped        bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: 100,
	}
}

// Option configures the Walker.
type Option func(*Walker)

// WithDocumentHandler sets the handler for the root document.
func WithDocumentHandler(fn DocumentHandler) Option {
	return func(w *Walker) { w.onDocument = fn }
}

// WithServerHandler sets the handler for Server objects.
func WithServerHandler(fn ServerHandler) Option {
	return func(w *Walker) { w.onServer = fn }
}

// WithPathItemHandler sets the handler for PathItem objects.
func WithPathItemHandler(fn PathItemHandler) Option {
	return func(w *Walker) { w.onPathItem = fn }
}

// WithOperationHandler sets the handler for Operation objects.
func WithOperationHandler(fn OperationHandler) Option {
	return func(w *Walker) { w.onOperation = fn }
}

// WithParameterHandler sets the handler for Parameter objects.
func WithParameterHandler(fn ParameterHandler) Option {
	return func(w *Walker) { w.onParameter = fn }
}

// WithRequestBodyHandler sets the handler for RequestBody objects.
func WithRequestBodyHandler(fn RequestBodyHandler) Option {
	return func(w *Walker) { w.onRequestBody = fn }
}

// WithResponseHandler sets the handler for Response objects.
func WithResponseHandler(fn ResponseHandler) Option {
	return func(w *Walker) { w.onResponse = fn }
}

// WithSchemaHandler sets the handler for Schema objects.
func WithSchemaHandler(fn SchemaHandler) Option {
	return func(w *Walker) { w.onSchema = fn }
}

// WithSecuritySchemeHandler sets the handler for SecurityScheme objects.
func WithSecuritySchemeHandler(fn SecuritySchemeHandler) Option {
	return func(w *Walker) { w.onSecurityScheme = fn }
}

// WithHeaderHandler sets the handler for Header objects.
func WithHeaderHandler(fn HeaderHandler) Option {
	return func(w *Walker) { w.onHeader = fn }
}

// WithMediaTypeHandler sets the handler for MediaType objects.
func WithMediaTypeHandler(fn MediaTypeHandler) Option {
	return func(w *Walker) { w.onMediaType = fn }
}

// WithLinkHandler sets the handler for Link objects.
func WithLinkHandler(fn LinkHandler) Option {
	return func(w *Walker) { w.onLink = fn }
}

// WithCallbackHandler sets the handler for Callback objects.
func WithCallbackHandler(fn CallbackHandler) Option {
	return func(w *Walker) { w.onCallback = fn }
}

// WithExampleHandler sets the handler for Example objects.
func WithExampleHandler(fn ExampleHandler) Option {
	return func(w *Walker) { w.onExample = fn }
}

// WithSchemaSkippedHandler sets the handler called when schemas are skipped.
func WithSchemaSkippedHandler(fn SchemaSkippedHandler) Option {
	return func(w *Walker) { w.onSchemaSkipped = fn }
}

// Walk traverses doc and calls registered handlers for each node.
func Walk(doc *parser.Document, opts ...Option) error {
	if doc == nil {
		return fmt.Errorf("walker: nil Document")
	}

	w := New()
	for _, opt := range opts {
		opt(w)
	}

	return w.walk(doc)
}

// walk performs the actual traversal.
func (w *Walker) walk(doc *parser.Document) error {
	w.visitedSchemas = make(map[*parser.Schema]bool)
	w.stopped = false

	state := &walkState{ctx: w.userCtx}
	return w.walkDocument(doc, state)
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
