// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// Local reference prefixes.
const (
	RefPrefixComponents = "#/components/"
	RefPrefixPaths      = "#/paths/"
)

// ComponentRef builds "#/components/{category}/{name}", escaping name as a
// JSON Pointer token.
func ComponentRef(category, name string) string {
	return RefPrefixComponents + category + "/" + EscapeToken(name)
}

// PathRef builds "#/paths/{escapedPath}".
func PathRef(path string) string {
	return RefPrefixPaths + EscapeToken(path)
}

// ComponentRefParts is a "#/components/..." reference split into its parts.
type ComponentRefParts struct {
	// Category is the registry name, e.g. "schemas".
	Category string
	// Name is the unescaped entry name.
	Name string
	// Rest is the remainder of the pointer including its leading "/", or empty.
	Rest string
}

// String rebuilds the reference.
func (p ComponentRefParts) String() string {
	return ComponentRef(p.Category, p.Name) + p.Rest
}

// SplitComponentRef parses "#/components/{category}/{escapedName}[/rest]".
// It returns false when ref is not a local component reference.
func SplitComponentRef(ref string) (ComponentRefParts, bool) {
	tail, ok := strings.CutPrefix(ref, RefPrefixComponents)
	if !ok {
		return ComponentRefParts{}, false
	}
	category, tail, ok := strings.Cut(tail, "/")
	if !ok || category == "" || tail == "" {
		return ComponentRefParts{}, false
	}
	name, rest := tail, ""
	if i := strings.IndexByte(tail, '/'); i >= 0 {
		name, rest = tail[:i], tail[i:]
	}
	return ComponentRefParts{Category: category, Name: UnescapeToken(name), Rest: rest}, true
}

// SplitPathRef parses "#/paths/{escapedPath}[/rest]" and returns the
// unescaped path key and the untouched remainder.
func SplitPathRef(ref string) (path, rest string, ok bool) {
	tail, ok := strings.CutPrefix(ref, RefPrefixPaths)
	if !ok || tail == "" {
		return "", "", false
	}
	token := tail
	if i := strings.IndexByte(tail, '/'); i >= 0 {
		token, rest = tail[:i], tail[i:]
	}
	return UnescapeToken(token), rest, true
}
