package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the concrete error types through errors.Is.
var (
	ErrParse         = errors.New("parse error")
	ErrShape         = errors.New("shape error")
	ErrResourceLimit = errors.New("resource limit exceeded")
	ErrConfig        = errors.New("configuration error")
)

// message accumulates "<kind> <detail>...: <message>: <cause>" strings.
type message struct {
	b strings.Builder
}

func newMessage(kind string) *message {
	m := &message{}
	m.b.WriteString(kind)
	return m
}

func (m *message) add(format string, args ...any) {
	fmt.Fprintf(&m.b, format, args...)
}

// tail appends the free-form message and the cause, when present.
func (m *message) tail(msg string, cause error) string {
	if msg != "" {
		m.b.WriteString(": ")
		m.b.WriteString(msg)
	}
	if cause != nil {
		m.b.WriteString(": ")
		m.b.WriteString(cause.Error())
	}
	return m.b.String()
}

// ParseError reports a document that could not be decoded or is not a
// supported OpenAPI 3.x version.
type ParseError struct {
	Path    string // source path or identifier
	Line    int    // 0 if unknown
	Column  int    // 0 if unknown
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	m := newMessage("parse error")
	if e.Path != "" {
		m.add(" in %s", e.Path)
	}
	if e.Line > 0 {
		m.add(" at line %d", e.Line)
		if e.Column > 0 {
			m.add(", column %d", e.Column)
		}
	}
	return m.tail(e.Message, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ShapeError reports a value whose dynamic kind the structural copier or
// comparator cannot handle, such as a map keyed by something other than
// strings or an additionalProperties that is neither a bool nor a schema.
type ShapeError struct {
	// Path locates the value, e.g. "components.schemas.Pet.default".
	Path    string
	Value   any
	Message string
}

func (e *ShapeError) Error() string {
	m := newMessage("shape error")
	if e.Path != "" {
		m.add(" at %s", e.Path)
	}
	if e.Value != nil {
		m.add(": unexpected %T", e.Value)
	}
	return m.tail(e.Message, nil)
}

func (e *ShapeError) Unwrap() error { return nil }

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// ResourceLimitError reports an input exceeding a configured maximum.
type ResourceLimitError struct {
	// ResourceType names the limit, e.g. "documents" or "file_size".
	ResourceType string
	Limit        int64
	Actual       int64 // 0 if unknown
	Message      string
}

func (e *ResourceLimitError) Error() string {
	m := newMessage("resource limit exceeded")
	if e.ResourceType != "" {
		m.add(": %s", e.ResourceType)
	}
	if e.Limit > 0 {
		m.add(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			m.add(", actual: %d", e.Actual)
		}
		m.add(")")
	}
	return m.tail(e.Message, nil)
}

func (e *ResourceLimitError) Unwrap() error { return nil }

func (e *ResourceLimitError) Is(target error) bool { return target == ErrResourceLimit }

// ConfigError reports an invalid option, a missing input or conflicting
// settings.
type ConfigError struct {
	Option  string
	Value   any // may be nil
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	m := newMessage("configuration error")
	if e.Option != "" {
		m.add(" for %s", e.Option)
	}
	if e.Value != nil {
		m.add(" (value: %v)", e.Value)
	}
	return m.tail(e.Message, e.Cause)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
