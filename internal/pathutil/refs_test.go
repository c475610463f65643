package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Pet", "Pet"},
		{"/pets/{id}", "~1pets~1{id}"},
		{"a~b", "a~0b"},
		{"~/", "~0~1"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := EscapeToken(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, UnescapeToken(got))
		})
	}
}

func TestUnescapeToken_SinglePass(t *testing.T) {
	assert.Equal(t, "~1", UnescapeToken("~01"))
	assert.Equal(t, "/", UnescapeToken("~1"))
}

func TestComponentRef(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Pet", ComponentRef("schemas", "Pet"))
	assert.Equal(t, "#/components/responses/Not~1Found", ComponentRef("responses", "Not/Found"))
	assert.Equal(t, "#/paths/~1api~1pets", PathRef("/api/pets"))
}

func TestSplitComponentRef(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want ComponentRefParts
		ok   bool
	}{
		{
			name: "schema",
			ref:  "#/components/schemas/Pet",
			want: ComponentRefParts{Category: "schemas", Name: "Pet"},
			ok:   true,
		},
		{
			name: "with remainder",
			ref:  "#/components/schemas/Pet/properties/name",
			want: ComponentRefParts{Category: "schemas", Name: "Pet", Rest: "/properties/name"},
			ok:   true,
		},
		{
			name: "escaped name",
			ref:  "#/components/schemas/a~1b~0c",
			want: ComponentRefParts{Category: "schemas", Name: "a/b~c"},
			ok:   true,
		},
		{name: "external", ref: "other.yaml#/components/schemas/Pet"},
		{name: "missing name", ref: "#/components/schemas/"},
		{name: "missing category", ref: "#/components/"},
		{name: "paths", ref: "#/paths/~1pets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SplitComponentRef(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.ref, got.String())
			}
		})
	}
}

func TestSplitPathRef(t *testing.T) {
	path, rest, ok := SplitPathRef("#/paths/~1pets~1{id}/get")
	assert.True(t, ok)
	assert.Equal(t, "/pets/{id}", path)
	assert.Equal(t, "/get", rest)

	path, rest, ok = SplitPathRef("#/paths/~1pets")
	assert.True(t, ok)
	assert.Equal(t, "/pets", path)
	assert.Empty(t, rest)

	_, _, ok = SplitPathRef("#/paths/")
	assert.False(t, ok)
	_, _, ok = SplitPathRef("#/components/schemas/Pet")
	assert.False(t, ok)
}
