package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/afs"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasmerge/oaserrors"
)

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseFormat converts a user supplied format name into a SourceFormat.
// The empty string maps to SourceFormatUnknown.
func ParseFormat(name string) (SourceFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return SourceFormatUnknown, nil
	case "yaml", "yml":
		return SourceFormatYAML, nil
	case "json":
		return SourceFormatJSON, nil
	default:
		return SourceFormatUnknown, &oaserrors.ConfigError{
			Option:  "format",
			Value:   name,
			Message: "must be yaml or json",
		}
	}
}

// ParseResult contains a parsed OpenAPI 3.x document and metadata about its source.
type ParseResult struct {
	// SourcePath is the location the document was read from.
	// For in-memory sources it is whatever name the caller supplied.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the document's openapi field (e.g., "3.0.3", "3.1.0")
	Version string
	// Document is the parsed document
	Document *Document
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// detectFormat detects the source format from the path extension and falls
// back to the content: JSON objects start with '{', anything else is YAML.
func detectFormat(sourcePath string, data []byte) SourceFormat {
	switch strings.ToLower(filepath.Ext(sourcePath)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// ParseBytes parses an OpenAPI 3.x document from YAML or JSON bytes.
// sourcePath is only used for format detection and error messages.
func ParseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "document is empty"}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Message: "failed to parse OAS 3.x document structure",
			Cause:   err,
		}
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		msg := "missing openapi field"
		if doc.OpenAPI != "" {
			msg = fmt.Sprintf("unsupported OpenAPI version: %s (only 3.x versions are supported)", doc.OpenAPI)
		}
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: msg}
	}

	return &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: detectFormat(sourcePath, data),
		Version:      doc.OpenAPI,
		Document:     &doc,
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(&doc),
	}, nil
}

// ParseLocation downloads and parses a document from a local path or any URL
// scheme supported by github.com/viant/afs (file://, mem://, http(s)://, ...).
func ParseLocation(ctx context.Context, location string) (*ParseResult, error) {
	start := time.Now()
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, &oaserrors.ParseError{
			Path:    location,
			Message: "failed to read document",
			Cause:   err,
		}
	}
	result, err := ParseBytes(data, location)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// Marshal serializes doc as YAML or JSON. SourceFormatUnknown means YAML.
//
// JSON output is produced from the YAML encoding so that inline extension
// fields and custom YAML marshalers are honored in both formats.
func Marshal(doc *Document, format SourceFormat) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("parser: failed to marshal document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("parser: failed to marshal document: %w", err)
	}
	if format != SourceFormatJSON {
		return buf.Bytes(), nil
	}

	var tree any
	if err := yaml.Unmarshal(buf.Bytes(), &tree); err != nil {
		return nil, fmt.Errorf("parser: failed to re-read document for JSON: %w", err)
	}
	data, err := json.MarshalIndent(jsonCompatible(tree), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal document as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// jsonCompatible converts YAML maps with non-string keys into string-keyed maps.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = jsonCompatible(item)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, item := range t {
			m[fmt.Sprint(k)] = jsonCompatible(item)
		}
		return m
	case []any:
		for i, item := range t {
			t[i] = jsonCompatible(item)
		}
		return t
	default:
		return v
	}
}
