package merger

import (
	"testing"

	"github.com/erraggy/oasmerge/parser"
	"github.com/stretchr/testify/assert"
)

func TestRewriteRef(t *testing.T) {
	d := newDocNames(1)
	d.record(CategorySchemas, "Pet", "Pet1")
	d.record(CategorySchemas, "Owner", "Owner")
	d.record(CategoryParameters, "a/b", "a/b1")
	d.record(CategoryPaths, "/pets", "/v1/pets")

	tests := []struct {
		name    string
		ref     string
		want    string
		changed bool
	}{
		{"renamed schema", "#/components/schemas/Pet", "#/components/schemas/Pet1", true},
		{"kept schema", "#/components/schemas/Owner", "#/components/schemas/Owner", false},
		{"unknown schema", "#/components/schemas/Cat", "#/components/schemas/Cat", false},
		{"nested pointer", "#/components/schemas/Pet/properties/name", "#/components/schemas/Pet1/properties/name", true},
		{"escaped name", "#/components/parameters/a~1b", "#/components/parameters/a~1b1", true},
		{"other category", "#/components/responses/Pet", "#/components/responses/Pet", false},
		{"moved path", "#/paths/~1pets/get", "#/paths/~1v1~1pets/get", true},
		{"unmoved path", "#/paths/~1owners/get", "#/paths/~1owners/get", false},
		{"external", "other.yaml#/components/schemas/Pet", "other.yaml#/components/schemas/Pet", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := d.rewriteRef(tt.ref)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestRenameSecurityKeys(t *testing.T) {
	d := newDocNames(1)
	d.record(CategorySecuritySchemes, "apiKey", "apiKey1")

	reqs := []parser.SecurityRequirement{
		{"apiKey": {}, "oauth": {"read"}},
		{"basic": {}},
	}
	d.renameSecurityKeys(reqs)

	assert.Equal(t, []parser.SecurityRequirement{
		{"apiKey1": {}, "oauth": {"read"}},
		{"basic": {}},
	}, reqs)
}

func TestRewriteDiscriminator(t *testing.T) {
	d := newDocNames(1)
	d.record(CategorySchemas, "Cat", "Cat1")

	disc := &parser.Discriminator{
		PropertyName: "kind",
		Mapping: map[string]string{
			"cat":      "#/components/schemas/Cat",
			"kitten":   "Cat",
			"dog":      "Dog",
			"external": "pets.yaml#/Cat",
		},
	}
	d.rewriteDiscriminator(disc)

	assert.Equal(t, map[string]string{
		"cat":      "#/components/schemas/Cat1",
		"kitten":   "Cat1",
		"dog":      "Dog",
		"external": "pets.yaml#/Cat",
	}, disc.Mapping)
}
