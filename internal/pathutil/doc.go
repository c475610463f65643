// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides reference and path helpers for OpenAPI 3.x
// documents.
//
// # Reference Builders
//
// Local references are JSON Pointers into the same document:
//
//	ref := pathutil.ComponentRef("responses", "Err") // "#/components/responses/Err"
//	ref := pathutil.PathRef("/pets/{id}")            // "#/paths/~1pets~1{id}"
//
// Names are escaped as JSON Pointer tokens with [EscapeToken] and decoded
// with [UnescapeToken].
//
// # Reference Splitting
//
// [SplitComponentRef] and [SplitPathRef] split a reference into the entry it
// names and the remainder of the pointer, so the entry can be renamed while
// the remainder is kept verbatim:
//
//	parts, ok := pathutil.SplitComponentRef("#/components/schemas/Pet/properties/id")
//	// parts.Category == "schemas", parts.Name == "Pet", parts.Rest == "/properties/id"
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths. It rejects
// symlinks and directories:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err
//	}
package pathutil
