package walker

import (
	"context"
	"testing"

	"github.com/erraggy/oasmerge/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *parser.Document {
	return &parser.Document{
		OpenAPI: "3.0.3",
		Info:    &parser.Info{Title: "Test API", Version: "1.0.0"},
		Servers: []*parser.Server{{URL: "https://api.example.com/v1"}},
		Paths: parser.Paths{
			"/pets": &parser.PathItem{
				Post: &parser.Operation{
					OperationID: "createPet",
					RequestBody: &parser.RequestBody{Ref: "#/components/requestBodies/NewPet"},
					Responses: &parser.Responses{
						Codes: map[string]*parser.Response{
							"201": {Description: "Created"},
						},
					},
				},
				Get: &parser.Operation{
					OperationID: "listPets",
					Parameters:  []*parser.Parameter{{Ref: "#/components/parameters/Limit"}},
					Responses: &parser.Responses{
						Default: &parser.Response{Ref: "#/components/responses/Error"},
						Codes: map[string]*parser.Response{
							"200": {
								Description: "OK",
								Content: map[string]*parser.MediaType{
									"application/json": {
										Schema: &parser.Schema{
											Type:  "array",
											Items: &parser.Schema{Ref: "#/components/schemas/Pet"},
										},
									},
								},
								Links: map[string]*parser.Link{
									"self": {OperationRef: "#/paths/~1pets/get"},
								},
							},
						},
					},
				},
			},
			"/owners": &parser.PathItem{
				Get: &parser.Operation{OperationID: "listOwners"},
			},
		},
		Components: &parser.Components{
			Schemas: map[string]*parser.Schema{
				"Pet": {
					Type: "object",
					Properties: map[string]*parser.Schema{
						"name":  {Type: "string"},
						"owner": {Ref: "#/components/schemas/Owner"},
					},
				},
				"Owner": {Type: "object"},
			},
			Parameters: map[string]*parser.Parameter{
				"Limit": {Name: "limit", In: "query", Schema: &parser.Schema{Type: "integer"}},
			},
			Responses: map[string]*parser.Response{
				"Error": {Description: "error"},
			},
			RequestBodies: map[string]*parser.RequestBody{
				"NewPet": {Content: map[string]*parser.MediaType{
					"application/json": {Schema: &parser.Schema{Ref: "#/components/schemas/Pet"}},
				}},
			},
		},
	}
}

func TestWalk_NilDocument(t *testing.T) {
	err := Walk(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil Document")
}

func TestWalk_OperationOrder(t *testing.T) {
	var visited []string
	err := Walk(testDocument(),
		WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
			visited = append(visited, wc.Method+" "+wc.PathTemplate+" "+op.OperationID)
			return Continue
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"get /owners listOwners",
		"get /pets listPets",
		"post /pets createPet",
	}, visited)
}

func TestWalk_JSONPaths(t *testing.T) {
	var responsePaths []string
	var statusCodes []string
	err := Walk(testDocument(),
		WithResponseHandler(func(wc *WalkContext, resp *parser.Response) Action {
			if wc.IsComponent {
				return Continue
			}
			responsePaths = append(responsePaths, wc.JSONPath)
			statusCodes = append(statusCodes, wc.StatusCode)
			return Continue
		}),
	)

	require.NoError(t, err)
	// The default response is a $ref and is reported to the handler as well.
	assert.Equal(t, []string{
		"$.paths['/pets'].get.responses.default",
		"$.paths['/pets'].get.responses['200']",
		"$.paths['/pets'].post.responses['201']",
	}, responsePaths)
	assert.Equal(t, []string{"default", "200", "201"}, statusCodes)
}

func TestWalk_ComponentNames(t *testing.T) {
	var names []string
	err := Walk(testDocument(),
		WithSchemaHandler(func(wc *WalkContext, schema *parser.Schema) Action {
			if wc.IsComponent && wc.Name != "" {
				names = append(names, wc.Name)
			}
			return Continue
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"Owner", "Pet"}, names)
}

func TestWalk_SkipChildren(t *testing.T) {
	var schemaCount int
	err := Walk(testDocument(),
		WithPathItemHandler(func(wc *WalkContext, item *parser.PathItem) Action {
			return SkipChildren
		}),
		WithSchemaHandler(func(wc *WalkContext, schema *parser.Schema) Action {
			if !wc.IsComponent {
				schemaCount++
			}
			return Continue
		}),
	)

	require.NoError(t, err)
	assert.Zero(t, schemaCount)
}

func TestWalk_Stop(t *testing.T) {
	var visited int
	err := Walk(testDocument(),
		WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
			visited++
			return Stop
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, 1, visited)
}

func TestWalk_Servers(t *testing.T) {
	var urls []string
	err := Walk(testDocument(),
		WithServerHandler(func(wc *WalkContext, server *parser.Server) Action {
			urls = append(urls, wc.JSONPath+"="+server.URL)
			return Continue
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"$.servers[0]=https://api.example.com/v1"}, urls)
}

func TestWalk_UserContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	var got any
	err := WalkWithOptions(
		WithDocument(testDocument()),
		WithUserContext(ctx),
		WithDocumentHandler(func(wc *WalkContext, doc *parser.Document) Action {
			got = wc.Context().Value(key{})
			return Continue
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestWalkContext_DefaultContext(t *testing.T) {
	wc := &WalkContext{}
	assert.Equal(t, context.Background(), wc.Context())
	assert.False(t, wc.InPathsScope())
	assert.False(t, wc.InOperationScope())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "SkipChildren", SkipChildren.String())
	assert.Equal(t, "Stop", Stop.String())
	assert.Equal(t, "Action(7)", Action(7).String())
	assert.True(t, Stop.IsValid())
	assert.False(t, Action(-1).IsValid())
}

func TestWalk_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ops int
	err := WalkWithOptions(
		WithDocument(testDocument()),
		WithUserContext(ctx),
		WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
			ops++
			return Continue
		}),
	)

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, ops)
}

func TestWalk_ComponentHandlers(t *testing.T) {
	doc := &parser.Document{
		OpenAPI: "3.0.3",
		Components: &parser.Components{
			Parameters: map[string]*parser.Parameter{
				"Limit": {Name: "limit", In: "query", Examples: map[string]*parser.Example{"small": {Summary: "10"}}},
			},
			Examples: map[string]*parser.Example{"pet": {Summary: "a pet"}},
			RequestBodies: map[string]*parser.RequestBody{
				"Body": {Content: map[string]*parser.MediaType{"application/json": {}}},
			},
			Headers:         map[string]*parser.Header{"Rate": {}},
			SecuritySchemes: map[string]*parser.SecurityScheme{"apiKey": {Type: "apiKey", Name: "X-Key", In: "header"}},
			Links: map[string]*parser.Link{
				"next": {OperationID: "listPets", Server: &parser.Server{URL: "https://links"}},
			},
			Callbacks: map[string]*parser.Callback{
				"onEvent": {PathItems: map[string]*parser.PathItem{
					"{$request.body#/url}": {Post: &parser.Operation{OperationID: "notify"}},
				}},
			},
		},
	}

	var visited []string
	record := func(kind string) func(*WalkContext) {
		return func(wc *WalkContext) {
			assert.True(t, wc.IsComponent)
			visited = append(visited, kind+":"+wc.Name)
		}
	}
	err := Walk(doc,
		WithParameterHandler(func(wc *WalkContext, _ *parser.Parameter) Action { record("parameter")(wc); return Continue }),
		WithExampleHandler(func(wc *WalkContext, _ *parser.Example) Action { record("example")(wc); return Continue }),
		WithRequestBodyHandler(func(wc *WalkContext, _ *parser.RequestBody) Action { record("requestBody")(wc); return Continue }),
		WithMediaTypeHandler(func(wc *WalkContext, _ *parser.MediaType) Action { record("mediaType")(wc); return Continue }),
		WithHeaderHandler(func(wc *WalkContext, _ *parser.Header) Action { record("header")(wc); return Continue }),
		WithSecuritySchemeHandler(func(wc *WalkContext, _ *parser.SecurityScheme) Action {
			record("securityScheme")(wc)
			return Continue
		}),
		WithLinkHandler(func(wc *WalkContext, _ *parser.Link) Action { record("link")(wc); return Continue }),
		WithServerHandler(func(wc *WalkContext, s *parser.Server) Action { record("server")(wc); return Continue }),
		WithCallbackHandler(func(wc *WalkContext, _ *parser.Callback) Action { record("callback")(wc); return Continue }),
		WithPathItemHandler(func(wc *WalkContext, _ *parser.PathItem) Action { record("pathItem")(wc); return Continue }),
		WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
			record("operation")(wc)
			assert.Equal(t, "post", wc.Method)
			assert.Equal(t, "notify", op.OperationID)
			return Continue
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"parameter:Limit",
		"example:small",
		"example:pet",
		"requestBody:Body",
		"mediaType:application/json",
		"header:Rate",
		"securityScheme:apiKey",
		"link:next",
		"server:next",
		"callback:onEvent",
		"pathItem:onEvent",
		"operation:onEvent",
	}, visited)
}

func TestWalk_WebhooksPathItemsAndJSONSchemaKeywords(t *testing.T) {
	pet := func() *parser.Schema { return &parser.Schema{Ref: "#/components/schemas/Pet"} }
	doc := &parser.Document{
		OpenAPI: "3.1.0",
		Info:    &parser.Info{Title: "Test API", Version: "1.0.0"},
		Webhooks: map[string]*parser.PathItem{
			"newPet": {Post: &parser.Operation{
				OperationID: "newPet",
				RequestBody: &parser.RequestBody{Content: map[string]*parser.MediaType{
					"application/json": {Schema: pet()},
				}},
			}},
		},
		Components: &parser.Components{
			Schemas: map[string]*parser.Schema{
				"Box": {
					PrefixItems:           []*parser.Schema{pet()},
					UnevaluatedItems:      pet(),
					UnevaluatedProperties: false,
					Contains:              pet(),
					PropertyNames:         pet(),
					If:                    pet(),
					Then:                  pet(),
					Else:                  pet(),
					PatternProperties:     map[string]*parser.Schema{"^x": pet()},
					DependentSchemas:      map[string]*parser.Schema{"kind": pet()},
					Defs:                  map[string]*parser.Schema{"inner": pet()},
				},
			},
			PathItems: map[string]*parser.PathItem{
				"Ping": {Get: &parser.Operation{OperationID: "ping"}},
			},
		},
	}

	var refPaths []string
	var operations []string
	err := Walk(doc,
		WithRefHandler(func(wc *WalkContext, ref *RefInfo) Action {
			refPaths = append(refPaths, ref.SourcePath)
			return Continue
		}),
		WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
			operations = append(operations, op.OperationID)
			return Continue
		}),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"newPet", "ping"}, operations)
	assert.ElementsMatch(t, []string{
		"$.webhooks['newPet'].post.requestBody.content['application/json'].schema",
		"$.components.schemas['Box'].prefixItems[0]",
		"$.components.schemas['Box'].unevaluatedItems",
		"$.components.schemas['Box'].contains",
		"$.components.schemas['Box'].propertyNames",
		"$.components.schemas['Box'].if",
		"$.components.schemas['Box'].then",
		"$.components.schemas['Box'].else",
		"$.components.schemas['Box'].patternProperties['^x']",
		"$.components.schemas['Box'].dependentSchemas['kind']",
		"$.components.schemas['Box'].$defs['inner']",
	}, refPaths)
}
