package merger

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/erraggy/oasmerge/oaserrors"
	"github.com/erraggy/oasmerge/parser"
)

// Synthetic info used when the inputs disagree on info.
const (
	DefaultMergedTitle   = "Merged documentation"
	DefaultMergedVersion = "1.0"
)

// Config configures how documents are merged.
type Config struct {
	// MergedTitle is the info title used when the inputs' info objects differ.
	MergedTitle string
	// MergedVersion is the info version used when the inputs' info objects differ.
	MergedVersion string
	// MaxDocuments limits the number of inputs accepted by one merge call (0 means unlimited).
	MaxDocuments int
	// MaxSchemaDepth limits schema nesting (0 means unlimited). A document
	// nesting deeper fails the merge, since its deeper references could not
	// be rewritten.
	MaxSchemaDepth int
	// Logger receives diagnostic output. Nil means no logging.
	Logger parser.Logger
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		MergedTitle:    DefaultMergedTitle,
		MergedVersion:  DefaultMergedVersion,
		MaxDocuments:   0,
		MaxSchemaDepth: 0,
		Logger:         parser.NopLogger{},
	}
}

// Merger merges OpenAPI 3.x documents.
//
// A Merger holds only configuration, so one instance may be reused for any
// number of sequential Merge calls. All per-call state lives in the call.
type Merger struct {
	config Config
}

// New creates a new Merger instance with the provided configuration
func New(config Config) *Merger {
	config.Logger = parser.LoggerOrNop(config.Logger)
	if config.MergedTitle == "" {
		config.MergedTitle = DefaultMergedTitle
	}
	if config.MergedVersion == "" {
		config.MergedVersion = DefaultMergedVersion
	}
	if config.MaxSchemaDepth < 0 {
		config.MaxSchemaDepth = 0
	}
	return &Merger{config: config}
}

// Input is one document to merge.
type Input struct {
	// Document is the parsed document. It is never modified.
	Document *parser.Document
	// ContextRoot is the URL path prefix the document's API is served under.
	// Empty or "/" means the paths are used as they are.
	ContextRoot string
	// Name identifies the document in problems and warnings (e.g. its file name).
	Name string
}

// Rename records a name that changed while merging.
type Rename struct {
	// Document is the index of the input the name came from.
	Document int
	// Category is the registry the name lives in.
	Category Category
	// OldName is the name in the input document.
	OldName string
	// NewName is the name in the merged document.
	NewName string
}

// String returns a formatted rename description.
func (r Rename) String() string {
	return fmt.Sprintf("%s %q -> %q (document %d)", r.Category, r.OldName, r.NewName, r.Document+1)
}

// MergeResult contains the merged document and a report of how it was built.
type MergeResult struct {
	// Document is the merged document. When only one input survives clash
	// detection, this is that input's original document.
	Document *parser.Document
	// Problems lists every path clash, one entry per clashing path.
	Problems []string
	// Warnings contains structured, non-fatal notes about the merge.
	Warnings MergeWarnings
	// Included lists the indices of the inputs that were merged.
	Included []int
	// Excluded lists the indices of the inputs dropped because of path clashes.
	Excluded []int
	// Renames lists every name that changed, in processing order.
	Renames []Rename
	// Stats describes the merged document.
	Stats parser.DocumentStats
}

// AddWarning appends a structured warning.
func (r *MergeResult) AddWarning(w *MergeWarning) {
	r.Warnings = append(r.Warnings, w)
}

// Merge merges inputs into one document.
//
// Earlier inputs take precedence: a document that declares a path already
// declared by an accepted document is excluded, and names already reserved by
// an earlier document with a different definition are renamed in the later one.
func (m *Merger) Merge(inputs []Input) (*MergeResult, error) {
	return m.MergeContext(context.Background(), inputs)
}

// MergeContext is Merge with cancellation. The merge stops with ctx.Err()
// between documents and while references are rewritten.
func (m *Merger) MergeContext(ctx context.Context, inputs []Input) (*MergeResult, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("merger: %w", &oaserrors.ConfigError{Option: "inputs", Message: "no documents to merge"})
	}
	if m.config.MaxDocuments > 0 && len(inputs) > m.config.MaxDocuments {
		return nil, fmt.Errorf("merger: %w", &oaserrors.ResourceLimitError{
			ResourceType: "documents",
			Limit:        int64(m.config.MaxDocuments),
			Actual:       int64(len(inputs)),
		})
	}
	for i, in := range inputs {
		if in.Document == nil {
			return nil, fmt.Errorf("merger: %w", &oaserrors.ConfigError{
				Option:  fmt.Sprintf("inputs[%d]", i),
				Message: "document is nil",
			})
		}
	}

	s := newSession(ctx, m.config, inputs)
	return s.run()
}

// session holds the mutable state of one Merge call.
type session struct {
	ctx    context.Context
	config Config
	log    parser.Logger
	inputs []Input

	// docs holds the private copy of every input, indexed like inputs.
	docs []*parser.Document
	// names holds the per-document rename memo, indexed like inputs.
	names    []*docNames
	registry *registry

	result  *MergeResult
	renames []Rename
}

func newSession(ctx context.Context, config Config, inputs []Input) *session {
	return &session{
		ctx:      ctx,
		config:   config,
		log:      config.Logger,
		inputs:   inputs,
		docs:     make([]*parser.Document, len(inputs)),
		names:    make([]*docNames, len(inputs)),
		registry: newRegistry(),
		result:   &MergeResult{},
	}
}

func (s *session) run() (*MergeResult, error) {
	for i, in := range s.inputs {
		cp, err := parser.Copy(in.Document)
		if err != nil {
			return nil, fmt.Errorf("merger: copying %s: %w", s.label(i), err)
		}
		s.docs[i] = cp
		s.names[i] = newDocNames(i)
	}

	for i := range s.docs {
		s.applyContextRoot(i)
	}

	accepted := s.detectClashes()
	s.result.Included = accepted

	if len(accepted) == 1 {
		return s.identity(accepted[0]), nil
	}

	acceptedDocs := make([]*parser.Document, len(accepted))
	for i, idx := range accepted {
		acceptedDocs[i] = s.docs[idx]
	}
	cls, err := classify(acceptedDocs)
	if err != nil {
		return nil, fmt.Errorf("merger: comparing documents: %w", err)
	}
	s.log.Debug("classified shared attributes",
		"security", cls.security, "servers", cls.servers,
		"info", cls.info, "externalDocs", cls.externalDocs)

	for _, idx := range accepted {
		if err := s.ctx.Err(); err != nil {
			return nil, fmt.Errorf("merger: %w", err)
		}
		if err := s.renameDocument(idx); err != nil {
			return nil, fmt.Errorf("merger: renaming names in %s: %w", s.label(idx), err)
		}
		s.promote(idx, cls)
		if err := s.rewriteReferences(idx); err != nil {
			return nil, fmt.Errorf("merger: rewriting references in %s: %w", s.label(idx), err)
		}
	}

	s.result.Document = s.assemble(accepted, cls)
	s.result.Renames = s.renames
	s.result.Stats = parser.GetDocumentStats(s.result.Document)
	return s.result, nil
}

// identity returns the sole accepted input unmodified. Processing done on its
// copy is discarded, so only clash reports are kept.
func (s *session) identity(idx int) *MergeResult {
	s.log.Debug("single document accepted; returning it unmodified", "document", s.label(idx))
	kept := s.result.Warnings.ByCategory(WarnPathClash)
	s.result.Warnings = append(kept, newSingleDocumentWarning(idx, s.inputs[idx].Name, s.label(idx)))
	s.result.Document = s.inputs[idx].Document
	s.result.Stats = parser.GetDocumentStats(s.result.Document)
	return s.result
}

// label names an input for humans: "document 2 (b.yaml)".
func (s *session) label(idx int) string {
	if name := s.inputs[idx].Name; name != "" {
		return fmt.Sprintf("document %d (%s)", idx+1, name)
	}
	return ordinal(idx)
}

func ordinal(idx int) string {
	return fmt.Sprintf("document %d", idx+1)
}

// sortedKeys returns map keys in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// catchShape runs fn and returns any shape error it raised.
func catchShape(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = parser.RecoverShapeError(r)
		}
	}()
	fn()
	return nil
}
