// Package oaserrors provides structured error types for the oasmerge library.
//
// Import path: github.com/erraggy/oasmerge/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON parsing failures and unsupported versions
//   - [ShapeError]: Model values of a kind the copier or comparator rejects
//   - [ResourceLimitError]: Resource exhaustion (document count, size limits)
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrShape]: Matches any [ShapeError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
package oaserrors
