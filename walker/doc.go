// Package walker provides a document traversal API for OpenAPI 3.x documents.
//
// The walker visits every node of a [parser.Document] in a deterministic order
// and lets handlers inspect or mutate the nodes they receive. The merger uses it
// to find and rewrite every $ref after components have been renamed.
//
// # Quick Start
//
// Collect all operation IDs:
//
//	var operationIDs []string
//	err := walker.Walk(doc,
//	    walker.WithOperationHandler(func(wc *walker.WalkContext, op *parser.Operation) walker.Action {
//	        operationIDs = append(operationIDs, op.OperationID)
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// # Traversal Order
//
// Top-level servers are visited first, then paths in sorted order, then
// components. Within a path item, operations are visited in the order
// get, put, post, delete, options, head, patch, trace. Every map is visited
// in sorted key order.
//
// # References
//
// A [RefHandler] registered with [WithRefHandler] receives every non-empty $ref,
// including a link's operationRef. Calling [RefInfo.SetRef] rewrites the
// reference in place:
//
//	walker.WalkWithOptions(
//	    walker.WithDocument(doc),
//	    walker.WithRefHandler(func(wc *walker.WalkContext, ref *walker.RefInfo) walker.Action {
//	        if ref.Ref == "#/components/schemas/Pet" {
//	            ref.SetRef("#/components/schemas/Pet1")
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// # Schema Cycles
//
// Schemas reachable from themselves through pointers are visited once per
// descent. Schemas deeper than [WithMaxSchemaDepth] (default 100, zero for no
// bound) are skipped and reported to the [SchemaSkippedHandler], if any.
package walker
