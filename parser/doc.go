// Package parser holds the in-memory OpenAPI 3.x document model used by oasmerge,
// together with its structural copier, structural comparator, loader and writer.
//
// # Model
//
// [Document] and the types it reaches mirror the OpenAPI 3.x object graph as far
// as merging needs it. Every object keeps unknown and x- fields in an inline
// Extra map so they survive a parse/merge/write round trip.
//
// # Copying and comparing
//
// Every model type has a hand-written DeepCopy and Equals method. DeepCopy shares
// no slice, map, or pointer with its source. Equals compares slices in order and
// maps by key set, treating nil and empty collections as equal.
//
// Free-form values (examples, defaults, extensions) must be JSON-shaped. Anything
// else is a model shape error: the methods panic with *oaserrors.ShapeError and
// the package-level [Copy] and [Equal] functions turn that panic into an error:
//
//	cp, err := parser.Copy(doc)
//	if errors.Is(err, oaserrors.ErrShape) {
//		// doc carries a value the model does not allow
//	}
//
// # Loading and writing
//
//	result, err := parser.ParseLocation(ctx, "specs/pets.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := parser.Marshal(result.Document, parser.SourceFormatJSON)
//
// ParseLocation reads through github.com/viant/afs, so local paths, file://,
// mem:// and http(s):// locations all work. Only OpenAPI 3.x documents are accepted.
//
// # Related Packages
//
//   - [github.com/erraggy/oasmerge/merger] - Merge several documents into one
//   - [github.com/erraggy/oasmerge/walker] - Visit every node of a document
package parser
