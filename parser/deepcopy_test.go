package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmerge/oaserrors"
)

func TestCopy_EqualAndIndependent(t *testing.T) {
	doc := parsePetstore(t)
	pristine := parsePetstore(t)

	cp, err := Copy(doc)
	require.NoError(t, err)
	require.NotSame(t, doc, cp)
	assert.True(t, doc.Equals(cp))

	// Mutate every kind of container in the copy.
	cp.Info.Extra["x-audience"] = "internal"
	cp.Servers[0].URL = "https://changed"
	region := cp.Servers[0].Variables["region"]
	region.Enum[0] = "ap"
	cp.Security[0]["apiKey"] = append(cp.Security[0]["apiKey"], "write")
	cp.Tags[0].Name = "renamed"
	cp.Paths["/pets"].Get.Tags[0] = "other"
	cp.Paths["/pets"].Get.Responses.Codes["200"].Links["first"].Parameters["petId"] = "x"
	cp.Paths["/pets"].Post.Callbacks["onCreated"].PathItems["{$request.body#/callbackUrl}"].Post.Summary = "changed"
	pet := cp.Components.Schemas["Pet"]
	pet.Required[0] = "uuid"
	pet.Properties["tags"].AdditionalProperties.(*Schema).Type = "integer"
	pet.Extra["x-internal"].(map[string]any)["ids"].([]any)[0] = 99
	*cp.Components.Parameters["limit"].Schema.Maximum = 5
	delete(cp.Components.Schemas, "Error")

	assert.True(t, doc.Equals(pristine), "mutating the copy must not touch the source")
	assert.False(t, doc.Equals(cp))
}

func TestCopy_JSONSchemaKeywordsAndWebhooks(t *testing.T) {
	result, err := ParseBytes([]byte(webhooksYAML), "hooks.yaml")
	require.NoError(t, err)
	doc := result.Document
	pristine, err := ParseBytes([]byte(webhooksYAML), "hooks.yaml")
	require.NoError(t, err)

	cp, err := Copy(doc)
	require.NoError(t, err)
	assert.True(t, doc.Equals(cp))

	cp.Webhooks["newPet"].Ref = "#/components/pathItems/Other"
	cp.Components.PathItems["PetEvent"].Post.OperationID = "changed"
	tuple := cp.Components.Schemas["Tuple"]
	tuple.PrefixItems[1].Ref = "#/components/schemas/Other"
	tuple.Contains.Type = "string"
	pet := cp.Components.Schemas["Pet"]
	pet.PatternProperties["^x-"].Type = "integer"
	pet.UnevaluatedProperties.(*Schema).Type = "string"
	pet.DependentSchemas["owner"].Required[0] = "id"
	pet.If.Properties["kind"].Const = "cat"
	pet.Defs["id"].Format = "uri"

	assert.True(t, doc.Equals(pristine.Document), "mutating the copy must not touch the source")
	assert.False(t, doc.Equals(cp))
}

func TestDeepCopy_NilVsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		op    *Operation
		check func(t *testing.T, cp *Operation)
	}{
		{
			name: "nil Security stays nil",
			op:   &Operation{},
			check: func(t *testing.T, cp *Operation) {
				assert.Nil(t, cp.Security)
			},
		},
		{
			name: "empty Security stays empty",
			op:   &Operation{Security: []SecurityRequirement{}},
			check: func(t *testing.T, cp *Operation) {
				require.NotNil(t, cp.Security)
				assert.Empty(t, cp.Security)
			},
		},
		{
			name: "empty Tags stays empty",
			op:   &Operation{Tags: []string{}},
			check: func(t *testing.T, cp *Operation) {
				require.NotNil(t, cp.Tags)
				assert.Empty(t, cp.Tags)
			},
		},
		{
			name: "nil Callback entry is preserved",
			op:   &Operation{Callbacks: map[string]*Callback{"cb": nil}},
			check: func(t *testing.T, cp *Operation) {
				require.Contains(t, cp.Callbacks, "cb")
				assert.Nil(t, cp.Callbacks["cb"])
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.op.DeepCopy())
		})
	}
}

func TestDeepCopy_NilReceivers(t *testing.T) {
	var doc *Document
	assert.Nil(t, doc.DeepCopy())
	var schema *Schema
	assert.Nil(t, schema.DeepCopy())
	var cb *Callback
	assert.Nil(t, cb.DeepCopy())

	cp, err := Copy(nil)
	require.NoError(t, err)
	assert.Nil(t, cp)
}

func TestCopy_ShapeErrors(t *testing.T) {
	type custom struct{ A int }
	tests := []struct {
		name string
		doc  *Document
		path string
	}{
		{
			name: "struct in extension",
			doc:  &Document{OpenAPI: "3.0.0", Extra: map[string]any{"x-meta": custom{A: 1}}},
			path: "x-meta",
		},
		{
			name: "non-string keyed map in example",
			doc: &Document{OpenAPI: "3.0.0", Components: &Components{Examples: map[string]*Example{
				"e": {Value: map[any]any{1: "one"}},
			}}},
			path: "example.value",
		},
		{
			name: "additionalProperties string",
			doc: &Document{OpenAPI: "3.0.0", Components: &Components{Schemas: map[string]*Schema{
				"S": {AdditionalProperties: "yes"},
			}}},
			path: "schema.additionalProperties",
		},
		{
			name: "schema type number",
			doc: &Document{OpenAPI: "3.0.0", Components: &Components{Schemas: map[string]*Schema{
				"S": {Type: 7},
			}}},
			path: "schema.type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, err := Copy(tt.doc)
			require.Error(t, err)
			assert.Nil(t, cp)
			assert.True(t, errors.Is(err, oaserrors.ErrShape))
			var shapeErr *oaserrors.ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, tt.path, shapeErr.Path)
		})
	}
}

func TestRecoverShapeError_RepanicsOtherValues(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = RecoverShapeError("boom")
	})
	err := RecoverShapeError(&oaserrors.ShapeError{Path: "p"})
	assert.ErrorIs(t, err, oaserrors.ErrShape)
}
