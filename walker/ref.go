package walker

// Node types reported in RefInfo.NodeType.
const (
	RefNodeSchema         = "schema"
	RefNodeParameter      = "parameter"
	RefNodeHeader         = "header"
	RefNodeRequestBody    = "requestBody"
	RefNodeResponse       = "response"
	RefNodeExample        = "example"
	RefNodeLink           = "link"
	RefNodeCallback       = "callback"
	RefNodeSecurityScheme = "securityScheme"
	RefNodePathItem       = "pathItem"
	// RefNodeOperationRef marks a link's operationRef rather than its $ref.
	RefNodeOperationRef = "operationRef"
)

// RefInfo contains information about a $ref encountered during traversal.
type RefInfo struct {
	// Ref is the $ref value (e.g., "#/components/schemas/User")
	Ref string

	// SourcePath is the JSON path where the ref was encountered
	SourcePath string

	// NodeType is the type of node containing the ref (e.g., "schema", "parameter")
	NodeType string

	target *string
}

// SetRef replaces the reference on the node it was read from.
func (r *RefInfo) SetRef(ref string) {
	r.Ref = ref
	if r.target != nil {
		*r.target = ref
	}
}

// RefHandler is called when a $ref is encountered during traversal.
// Return Stop to halt traversal, Continue to proceed.
type RefHandler func(wc *WalkContext, ref *RefInfo) Action

// handleRef reports a non-empty reference to the ref handler.
func (w *Walker) handleRef(target *string, jsonPath, nodeType string, state *walkState) Action {
	if w.onRef == nil || *target == "" {
		return Continue
	}
	wc := state.buildContext(jsonPath)
	action := w.onRef(wc, &RefInfo{Ref: *target, SourcePath: jsonPath, NodeType: nodeType, target: target})
	if action == Stop {
		w.stopped = true
	}
	return action
}
