// Package oasmerge merges several OpenAPI 3.x documents into a single document.
//
// Each input is a parsed document plus an optional context root, the URL path
// prefix its API is served under. Documents are processed in priority order:
// a document declaring a path that an earlier document already declares is
// excluded as a whole, and names that collide with a different definition are
// renamed with a numeric suffix while every reference to them is rewritten.
//
// # Packages
//
//   - parser: OpenAPI 3.x data model, loading (YAML or JSON, local files or
//     any URL supported by github.com/viant/afs), writing, deep copy and
//     structural equality.
//   - walker: typed traversal of a document with reference rewriting.
//   - merger: the merge engine.
//   - oaserrors: error types shared by the packages above.
//
// # Quick Start
//
//	import (
//		"github.com/erraggy/oasmerge/merger"
//		"github.com/erraggy/oasmerge/parser"
//	)
//
//	pets, err := parser.ParseLocation(ctx, "pets.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	store, err := parser.ParseLocation(ctx, "store.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := merger.MergeWithOptions(
//		merger.WithNamedDocument("pets.yaml", pets.Document, "/pets"),
//		merger.WithNamedDocument("store.yaml", store.Document, "/store"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, problem := range result.Problems {
//		fmt.Println("warning:", problem)
//	}
//	data, err := parser.Marshal(result.Document, parser.SourceFormatYAML)
//
// # Command Line
//
// The oasmerge command wraps the merger:
//
//	oasmerge merge -o merged.yaml -r pets.yaml=/pets pets.yaml store.yaml
//	oasmerge mcp
//
// The mcp subcommand serves the merger as an MCP tool over stdio.
package oasmerge
