package walker

import (
	"maps"
	"slices"
	"strconv"

	"github.com/erraggy/oasmerge/parser"
)

// sortedKeys returns map keys in sorted order so traversal is deterministic.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func keyPath(base, key string) string {
	return base + "['" + key + "']"
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

// walkDocument traverses an OAS 3.x document.
func (w *Walker) walkDocument(doc *parser.Document, state *walkState) error {
	if w.onDocument != nil {
		if !w.handleAction(w.onDocument(state.buildContext("$"), doc)) {
			return nil
		}
	}

	w.walkServers(doc.Servers, "$.servers", state)
	if w.stopped {
		return nil
	}

	for _, pathTemplate := range sortedKeys(doc.Paths) {
		if w.stopped {
			return nil
		}
		if err := state.err(); err != nil {
			return err
		}
		pathState := state.clone()
		pathState.pathTemplate = pathTemplate
		w.walkPathItem(doc.Paths[pathTemplate], keyPath("$.paths", pathTemplate), pathState)
	}

	for _, name := range sortedKeys(doc.Webhooks) {
		if w.stopped {
			return nil
		}
		if err := state.err(); err != nil {
			return err
		}
		w.walkPathItem(doc.Webhooks[name], keyPath("$.webhooks", name), state.withName(name))
	}

	if err := state.err(); err != nil {
		return err
	}
	if doc.Components != nil && !w.stopped {
		compState := state.clone()
		compState.isComponent = true
		w.walkComponents(doc.Components, "$.components", compState)
	}
	return nil
}

func (w *Walker) walkServers(servers []*parser.Server, basePath string, state *walkState) {
	if w.onServer == nil {
		return
	}
	for i, server := range servers {
		if w.stopped {
			return
		}
		if server != nil {
			w.handleAction(w.onServer(state.buildContext(indexPath(basePath, i)), server))
		}
	}
}

// walkPathItem walks a path item and its operations in fixed method order.
func (w *Walker) walkPathItem(item *parser.PathItem, basePath string, state *walkState) {
	if item == nil || w.stopped {
		return
	}
	if w.handleRef(&item.Ref, basePath, RefNodePathItem, state) == Stop {
		return
	}
	if w.onPathItem != nil {
		if !w.handleAction(w.onPathItem(state.buildContext(basePath), item)) {
			return
		}
	}

	w.walkServers(item.Servers, basePath+".servers", state)
	w.walkParameters(item.Parameters, basePath+".parameters", state)

	for _, mo := range item.Operations() {
		if w.stopped {
			return
		}
		opState := state.clone()
		opState.method = mo.Method
		w.walkOperation(mo.Operation, basePath+"."+mo.Method, opState)
	}
}

func (w *Walker) walkOperation(op *parser.Operation, basePath string, state *walkState) {
	if w.onOperation != nil {
		if !w.handleAction(w.onOperation(state.buildContext(basePath), op)) {
			return
		}
	}

	w.walkParameters(op.Parameters, basePath+".parameters", state)
	w.walkRequestBody(op.RequestBody, basePath+".requestBody", state)
	if op.Responses != nil {
		w.walkResponses(op.Responses, basePath+".responses", state)
	}
	for _, name := range sortedKeys(op.Callbacks) {
		w.walkCallback(op.Callbacks[name], keyPath(basePath+".callbacks", name), state.withName(name))
	}
	w.walkServers(op.Servers, basePath+".servers", state)
}

func (w *Walker) walkParameters(params []*parser.Parameter, basePath string, state *walkState) {
	for i, param := range params {
		w.walkParameter(param, indexPath(basePath, i), state)
	}
}

func (w *Walker) walkParameter(param *parser.Parameter, basePath string, state *walkState) {
	if param == nil || w.stopped {
		return
	}
	if w.handleRef(&param.Ref, basePath, RefNodeParameter, state) == Stop {
		return
	}
	if w.onParameter != nil {
		if !w.handleAction(w.onParameter(state.buildContext(basePath), param)) {
			return
		}
	}
	w.walkSchema(param.Schema, basePath+".schema", 0, state)
	w.walkExamples(param.Examples, basePath+".examples", state)
	w.walkContent(param.Content, basePath+".content", state)
}

func (w *Walker) walkRequestBody(body *parser.RequestBody, basePath string, state *walkState) {
	if body == nil || w.stopped {
		return
	}
	if w.handleRef(&body.Ref, basePath, RefNodeRequestBody, state) == Stop {
		return
	}
	if w.onRequestBody != nil {
		if !w.handleAction(w.onRequestBody(state.buildContext(basePath), body)) {
			return
		}
	}
	w.walkContent(body.Content, basePath+".content", state)
}

func (w *Walker) walkResponses(responses *parser.Responses, basePath string, state *walkState) {
	if responses.Default != nil {
		respState := state.clone()
		respState.statusCode = "default"
		w.walkResponse(responses.Default, basePath+".default", respState)
	}
	for _, code := range sortedKeys(responses.Codes) {
		respState := state.clone()
		respState.statusCode = code
		w.walkResponse(responses.Codes[code], keyPath(basePath, code), respState)
	}
}

func (w *Walker) walkResponse(resp *parser.Response, basePath string, state *walkState) {
	if resp == nil || w.stopped {
		return
	}
	if w.handleRef(&resp.Ref, basePath, RefNodeResponse, state) == Stop {
		return
	}
	if w.onResponse != nil {
		if !w.handleAction(w.onResponse(state.buildContext(basePath), resp)) {
			return
		}
	}
	w.walkHeaders(resp.Headers, basePath+".headers", state)
	w.walkContent(resp.Content, basePath+".content", state)
	for _, name := range sortedKeys(resp.Links) {
		w.walkLink(resp.Links[name], keyPath(basePath+".links", name), state.withName(name))
	}
}

func (w *Walker) walkHeaders(headers map[string]*parser.Header, basePath string, state *walkState) {
	for _, name := range sortedKeys(headers) {
		w.walkHeader(headers[name], keyPath(basePath, name), state.withName(name))
	}
}

func (w *Walker) walkHeader(header *parser.Header, basePath string, state *walkState) {
	if header == nil || w.stopped {
		return
	}
	if w.handleRef(&header.Ref, basePath, RefNodeHeader, state) == Stop {
		return
	}
	if w.onHeader != nil {
		if !w.handleAction(w.onHeader(state.buildContext(basePath), header)) {
			return
		}
	}
	w.walkSchema(header.Schema, basePath+".schema", 0, state)
	w.walkExamples(header.Examples, basePath+".examples", state)
	w.walkContent(header.Content, basePath+".content", state)
}

func (w *Walker) walkContent(content map[string]*parser.MediaType, basePath string, state *walkState) {
	for _, name := range sortedKeys(content) {
		w.walkMediaType(content[name], keyPath(basePath, name), state.withName(name))
	}
}

func (w *Walker) walkMediaType(mt *parser.MediaType, basePath string, state *walkState) {
	if mt == nil || w.stopped {
		return
	}
	if w.onMediaType != nil {
		if !w.handleAction(w.onMediaType(state.buildContext(basePath), mt)) {
			return
		}
	}
	w.walkSchema(mt.Schema, basePath+".schema", 0, state)
	w.walkExamples(mt.Examples, basePath+".examples", state)
	for _, name := range sortedKeys(mt.Encoding) {
		if enc := mt.Encoding[name]; enc != nil {
			w.walkHeaders(enc.Headers, keyPath(basePath+".encoding", name)+".headers", state)
		}
	}
}

func (w *Walker) walkExamples(examples map[string]*parser.Example, basePath string, state *walkState) {
	for _, name := range sortedKeys(examples) {
		w.walkExample(examples[name], keyPath(basePath, name), state.withName(name))
	}
}

func (w *Walker) walkExample(example *parser.Example, basePath string, state *walkState) {
	if example == nil || w.stopped {
		return
	}
	if w.handleRef(&example.Ref, basePath, RefNodeExample, state) == Stop {
		return
	}
	if w.onExample != nil {
		w.handleAction(w.onExample(state.buildContext(basePath), example))
	}
}

func (w *Walker) walkLink(link *parser.Link, basePath string, state *walkState) {
	if link == nil || w.stopped {
		return
	}
	if w.handleRef(&link.Ref, basePath, RefNodeLink, state) == Stop {
		return
	}
	if w.handleRef(&link.OperationRef, basePath+".operationRef", RefNodeOperationRef, state) == Stop {
		return
	}
	if w.onLink != nil {
		if !w.handleAction(w.onLink(state.buildContext(basePath), link)) {
			return
		}
	}
	if link.Server != nil && w.onServer != nil {
		w.handleAction(w.onServer(state.buildContext(basePath+".server"), link.Server))
	}
}

// walkCallback walks a callback's path items. Expressions are visited in sorted order.
func (w *Walker) walkCallback(cb *parser.Callback, basePath string, state *walkState) {
	if cb == nil || w.stopped {
		return
	}
	if w.handleRef(&cb.Ref, basePath, RefNodeCallback, state) == Stop {
		return
	}
	if w.onCallback != nil {
		if !w.handleAction(w.onCallback(state.buildContext(basePath), cb)) {
			return
		}
	}
	for _, expr := range sortedKeys(cb.PathItems) {
		itemState := state.clone()
		itemState.method = ""
		itemState.statusCode = ""
		w.walkPathItem(cb.PathItems[expr], keyPath(basePath, expr), itemState)
	}
}

func (w *Walker) walkSecurityScheme(scheme *parser.SecurityScheme, basePath string, state *walkState) {
	if scheme == nil || w.stopped {
		return
	}
	if w.handleRef(&scheme.Ref, basePath, RefNodeSecurityScheme, state) == Stop {
		return
	}
	if w.onSecurityScheme != nil {
		w.handleAction(w.onSecurityScheme(state.buildContext(basePath), scheme))
	}
}

// walkSchema walks a Schema and all its nested schemas.
func (w *Walker) walkSchema(schema *parser.Schema, basePath string, depth int, state *walkState) {
	if schema == nil || w.stopped {
		return
	}

	// Check for $ref before anything else
	if w.handleRef(&schema.Ref, basePath, RefNodeSchema, state) == Stop {
		return
	}

	if w.maxDepth > 0 && depth > w.maxDepth {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped(state.buildContext(basePath), "depth", schema)
		}
		return
	}
	if w.visitedSchemas[schema] {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped(state.buildContext(basePath), "cycle", schema)
		}
		return
	}
	w.visitedSchemas[schema] = true
	defer delete(w.visitedSchemas, schema)

	if w.onSchema != nil {
		if !w.handleAction(w.onSchema(state.buildContext(basePath), schema)) {
			return
		}
	}

	// Nested schemas are unnamed.
	nested := state.withName("")
	for _, name := range sortedKeys(schema.Properties) {
		w.walkSchema(schema.Properties[name], keyPath(basePath+".properties", name), depth+1, nested)
	}
	if addl, ok := schema.AdditionalProperties.(*parser.Schema); ok {
		w.walkSchema(addl, basePath+".additionalProperties", depth+1, nested)
	}
	w.walkSchema(schema.Items, basePath+".items", depth+1, nested)
	for i, s := range schema.AllOf {
		w.walkSchema(s, indexPath(basePath+".allOf", i), depth+1, nested)
	}
	for i, s := range schema.AnyOf {
		w.walkSchema(s, indexPath(basePath+".anyOf", i), depth+1, nested)
	}
	for i, s := range schema.OneOf {
		w.walkSchema(s, indexPath(basePath+".oneOf", i), depth+1, nested)
	}
	w.walkSchema(schema.Not, basePath+".not", depth+1, nested)

	for i, s := range schema.PrefixItems {
		w.walkSchema(s, indexPath(basePath+".prefixItems", i), depth+1, nested)
	}
	for _, field := range [...]struct {
		name  string
		value any
	}{
		{"additionalItems", schema.AdditionalItems},
		{"unevaluatedItems", schema.UnevaluatedItems},
		{"unevaluatedProperties", schema.UnevaluatedProperties},
	} {
		if sub, ok := field.value.(*parser.Schema); ok {
			w.walkSchema(sub, basePath+"."+field.name, depth+1, nested)
		}
	}
	for _, child := range [...]struct {
		name   string
		schema *parser.Schema
	}{
		{"contains", schema.Contains},
		{"propertyNames", schema.PropertyNames},
		{"contentSchema", schema.ContentSchema},
		{"if", schema.If},
		{"then", schema.Then},
		{"else", schema.Else},
	} {
		w.walkSchema(child.schema, basePath+"."+child.name, depth+1, nested)
	}
	for _, group := range [...]struct {
		name    string
		schemas map[string]*parser.Schema
	}{
		{"patternProperties", schema.PatternProperties},
		{"dependentSchemas", schema.DependentSchemas},
		{"$defs", schema.Defs},
	} {
		for _, name := range sortedKeys(group.schemas) {
			w.walkSchema(group.schemas[name], keyPath(basePath+"."+group.name, name), depth+1, nested)
		}
	}
}

// walkComponents walks every registry in a fixed order with sorted keys.
func (w *Walker) walkComponents(c *parser.Components, basePath string, state *walkState) {
	for _, name := range sortedKeys(c.Schemas) {
		w.walkSchema(c.Schemas[name], keyPath(basePath+".schemas", name), 0, state.withName(name))
	}
	for _, name := range sortedKeys(c.Responses) {
		respState := state.withName(name)
		w.walkResponse(c.Responses[name], keyPath(basePath+".responses", name), respState)
	}
	for _, name := range sortedKeys(c.Parameters) {
		w.walkParameter(c.Parameters[name], keyPath(basePath+".parameters", name), state.withName(name))
	}
	w.walkExamples(c.Examples, basePath+".examples", state)
	for _, name := range sortedKeys(c.RequestBodies) {
		w.walkRequestBody(c.RequestBodies[name], keyPath(basePath+".requestBodies", name), state.withName(name))
	}
	w.walkHeaders(c.Headers, basePath+".headers", state)
	for _, name := range sortedKeys(c.SecuritySchemes) {
		w.walkSecurityScheme(c.SecuritySchemes[name], keyPath(basePath+".securitySchemes", name), state.withName(name))
	}
	for _, name := range sortedKeys(c.Links) {
		w.walkLink(c.Links[name], keyPath(basePath+".links", name), state.withName(name))
	}
	for _, name := range sortedKeys(c.Callbacks) {
		w.walkCallback(c.Callbacks[name], keyPath(basePath+".callbacks", name), state.withName(name))
	}
	for _, name := range sortedKeys(c.PathItems) {
		w.walkPathItem(c.PathItems[name], keyPath(basePath+".pathItems", name), state.withName(name))
	}
}
