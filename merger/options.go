package merger

import (
	"context"
	"fmt"

	"github.com/erraggy/oasmerge/oaserrors"
	"github.com/erraggy/oasmerge/parser"
)

// Option is a function that configures a merge operation
type Option func(*mergeConfig) error

// mergeConfig holds configuration for a merge operation
type mergeConfig struct {
	inputs []Input

	// Configuration options (nil means use default from DefaultConfig)
	ctx            context.Context
	config         *Config
	logger         parser.Logger
	mergedTitle    *string
	mergedVersion  *string
	maxDocuments   *int
	maxSchemaDepth *int
}

// MergeWithOptions merges documents using functional options.
// Inputs are merged in the order their options are given.
//
// Example:
//
//	result, err := merger.MergeWithOptions(
//	    merger.WithNamedDocument("pets.yaml", pets, "/pets-api"),
//	    merger.WithNamedDocument("users.yaml", users, ""),
//	    merger.WithMergedInfo("Platform API", "2.0"),
//	)
func MergeWithOptions(opts ...Option) (*MergeResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("merger: invalid options: %w", err)
	}

	config := DefaultConfig()
	if cfg.config != nil {
		config = *cfg.config
	}
	if cfg.logger != nil {
		config.Logger = cfg.logger
	}
	config.MergedTitle = valueOrDefault(cfg.mergedTitle, config.MergedTitle)
	config.MergedVersion = valueOrDefault(cfg.mergedVersion, config.MergedVersion)
	config.MaxDocuments = valueOrDefault(cfg.maxDocuments, config.MaxDocuments)
	config.MaxSchemaDepth = valueOrDefault(cfg.maxSchemaDepth, config.MaxSchemaDepth)

	ctx := cfg.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return New(config).MergeContext(ctx, cfg.inputs)
}

// applyOptions applies option functions and validates the result
func applyOptions(opts ...Option) (*mergeConfig, error) {
	cfg := &mergeConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if len(cfg.inputs) == 0 {
		return nil, &oaserrors.ConfigError{
			Option:  "inputs",
			Message: "no documents to merge: use WithDocument, WithNamedDocument or WithInputs",
		}
	}
	return cfg, nil
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

// WithInputs appends inputs to merge.
func WithInputs(inputs ...Input) Option {
	return func(cfg *mergeConfig) error {
		cfg.inputs = append(cfg.inputs, inputs...)
		return nil
	}
}

// WithDocument appends a document served under contextRoot.
// Pass an empty contextRoot when the document's paths are used as they are.
func WithDocument(doc *parser.Document, contextRoot string) Option {
	return WithNamedDocument("", doc, contextRoot)
}

// WithNamedDocument appends a document with a name used in problems and warnings.
func WithNamedDocument(name string, doc *parser.Document, contextRoot string) Option {
	return func(cfg *mergeConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "document", Value: name, Message: "document is nil"}
		}
		cfg.inputs = append(cfg.inputs, Input{Document: doc, ContextRoot: contextRoot, Name: name})
		return nil
	}
}

// WithParsed appends parse results, naming each input after its source path.
func WithParsed(results ...*parser.ParseResult) Option {
	return func(cfg *mergeConfig) error {
		for i, result := range results {
			if result == nil || result.Document == nil {
				return &oaserrors.ConfigError{
					Option:  fmt.Sprintf("parsed[%d]", i),
					Message: "parse result has no document",
				}
			}
			cfg.inputs = append(cfg.inputs, Input{Document: result.Document, Name: result.SourcePath})
		}
		return nil
	}
}

// WithConfig applies an entire Config struct.
// Individual options such as WithLogger override its fields.
func WithConfig(config Config) Option {
	return func(cfg *mergeConfig) error {
		cfg.config = &config
		return nil
	}
}

// WithContext sets the context that cancels the merge.
func WithContext(ctx context.Context) Option {
	return func(cfg *mergeConfig) error {
		if ctx == nil {
			return &oaserrors.ConfigError{Option: "context", Message: "context is nil"}
		}
		cfg.ctx = ctx
		return nil
	}
}

// WithLogger sets the logger for diagnostic output.
func WithLogger(logger parser.Logger) Option {
	return func(cfg *mergeConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithMergedInfo sets the title and version of the info object used when
// the inputs' info objects differ.
func WithMergedInfo(title, version string) Option {
	return func(cfg *mergeConfig) error {
		if title == "" || version == "" {
			return &oaserrors.ConfigError{
				Option:  "merged info",
				Message: "title and version must not be empty",
			}
		}
		cfg.mergedTitle = &title
		cfg.mergedVersion = &version
		return nil
	}
}

// WithMaxDocuments limits the number of documents one merge accepts (0 means unlimited).
func WithMaxDocuments(n int) Option {
	return func(cfg *mergeConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "max documents", Value: n, Message: "must not be negative"}
		}
		cfg.maxDocuments = &n
		return nil
	}
}

// WithMaxSchemaDepth limits schema nesting (0 means unlimited). Merging a
// document that nests deeper fails with an error matching
// oaserrors.ErrResourceLimit.
func WithMaxSchemaDepth(depth int) Option {
	return func(cfg *mergeConfig) error {
		if depth < 0 {
			return &oaserrors.ConfigError{Option: "max schema depth", Value: depth, Message: "must not be negative"}
		}
		cfg.maxSchemaDepth = &depth
		return nil
	}
}
