// Package merger merges several OpenAPI 3.x documents into one.
//
// Each input is a parsed document plus the context root its API is served
// under. The merge never modifies an input: every document is deep copied
// before any processing.
//
// # Pipeline
//
// A merge runs these stages once, in order:
//
//  1. Copy every input.
//  2. Prepend each document's context root to its paths, if every server URL
//     in the document ends with it. Matching server URLs lose the suffix.
//     Otherwise the document is left unchanged.
//  3. Detect path clashes in input order. A document that declares a path an
//     earlier accepted document owns is excluded as a whole, and one problem
//     is reported per clashing path.
//  4. Decide whether security, servers, info and externalDocs are identical
//     across the accepted documents.
//  5. For each accepted document, allocate names, push differing security and
//     servers down to operations and path items, and rewrite references.
//  6. Fold the documents into the merged document.
//
// When only one document is accepted it is returned unmodified.
//
// # Names
//
// Tags, operationIds, webhooks and the keys of every components registry share
// one namespace per category across the merge. A name reused by a later document
// for a structurally equal definition is shared. A name reused for a
// different definition is renamed to the first free of Name1, Name2 and so
// on, and every reference in that document follows the rename:
//
//	#/components/schemas/Pet  ->  #/components/schemas/Pet1
//
// Within one document a name is renamed the same way everywhere. A name seen
// twice in one document keeps its first allocation even when the second
// definition differs.
//
// # Quick Start
//
//	result, err := merger.MergeWithOptions(
//	    merger.WithNamedDocument("pets.yaml", pets.Document, "/pets"),
//	    merger.WithNamedDocument("users.yaml", users.Document, "/users"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, problem := range result.Problems {
//	    log.Println(problem)
//	}
//
// # Errors
//
// Path clashes are not errors: they are reported in [MergeResult.Problems]
// and as [WarnPathClash] warnings. A model value of an unexpected kind aborts
// the merge with an error matching oaserrors.ErrShape. A schema nested deeper
// than a configured [Config.MaxSchemaDepth] aborts it with one matching
// oaserrors.ErrResourceLimit.
package merger
