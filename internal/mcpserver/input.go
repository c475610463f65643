package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/oasmerge/parser"
)

// specInput is one document to merge. Exactly one of File or Content must be set.
type specInput struct {
	File        string `json:"file,omitempty"         jsonschema:"Path to an OAS file on disk"`
	Content     string `json:"content,omitempty"      jsonschema:"Inline OAS document content (JSON or YAML)"`
	ContextRoot string `json:"context_root,omitempty" jsonschema:"URL path prefix the API is served under (e.g. /pets-api). Prepended to every path when all server URLs end with it."`
	Name        string `json:"name,omitempty"         jsonschema:"Name used for this spec in problems and renames. Defaults to the file path."`
}

// displayName returns the name used for the spec in merge reports.
func (s specInput) displayName(idx int) string {
	switch {
	case s.Name != "":
		return s.Name
	case s.File != "":
		return s.File
	default:
		return fmt.Sprintf("content[%d]", idx)
	}
}

// resolve parses the spec from whichever input was provided.
func (s specInput) resolve(ctx context.Context, idx int) (*parser.ParseResult, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided (got both)")
	case s.File != "":
		if scheme, _, ok := strings.Cut(s.File, "://"); ok && scheme != "file" {
			return nil, fmt.Errorf("file must be a local path, got %s URL", scheme)
		}
		return parser.ParseLocation(ctx, s.File)
	case s.Content != "":
		if int64(len(s.Content)) > cfg.MCP.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASMERGE_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MCP.MaxInlineSize)
		}
		return parser.ParseBytes([]byte(s.Content), s.displayName(idx))
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided (got neither)")
	}
}
