package walker

import "context"

// WalkContext describes where the node passed to a handler sits in the document.
type WalkContext struct {
	// JSONPath locates the node, e.g. "$.paths['/pets'].get.responses['200']".
	JSONPath string

	// PathTemplate is the key of the enclosing path item ("/pets/{petId}"),
	// or "" outside $.paths.
	PathTemplate string

	// Method is the enclosing operation's lowercase HTTP method, or "".
	Method string

	// StatusCode is the enclosing response's code ("200", "default"), or "".
	StatusCode string

	// Name is the map key of the node when it is a named entry such as a
	// component, property, header or example. It is "" for list items.
	Name string

	// IsComponent reports whether the node lives under $.components.
	IsComponent bool

	ctx context.Context
}

// Context returns the context passed with WithUserContext, or
// context.Background() when none was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// InPathsScope reports whether the node is under $.paths.
func (wc *WalkContext) InPathsScope() bool {
	return wc.PathTemplate != ""
}

// InOperationScope reports whether the node belongs to an operation.
func (wc *WalkContext) InOperationScope() bool {
	return wc.Method != ""
}

// walkState is the scope carried down the traversal; each handler call gets
// a WalkContext snapshot of it.
type walkState struct {
	pathTemplate string
	method       string
	statusCode   string
	name         string
	isComponent  bool
	ctx          context.Context
}

func (s *walkState) buildContext(jsonPath string) *WalkContext {
	return &WalkContext{
		JSONPath:     jsonPath,
		PathTemplate: s.pathTemplate,
		Method:       s.method,
		StatusCode:   s.statusCode,
		Name:         s.name,
		IsComponent:  s.isComponent,
		ctx:          s.ctx,
	}
}

// err reports cancellation of the user context.
func (s *walkState) err() error {
	if s.ctx == nil {
		return nil
	}
	return s.ctx.Err()
}

func (s *walkState) clone() *walkState {
	c := *s
	return &c
}

// withName returns a child state naming the current map entry.
func (s *walkState) withName(name string) *walkState {
	c := s.clone()
	c.name = name
	return c
}
