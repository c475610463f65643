package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeWarning_Location(t *testing.T) {
	tests := []struct {
		name string
		w    MergeWarning
		want string
	}{
		{"source and path", MergeWarning{Source: "a.yaml", Path: "paths./foo"}, "a.yaml: paths./foo"},
		{"path only", MergeWarning{Path: "schemas.Pet"}, "schemas.Pet"},
		{"source only", MergeWarning{Source: "a.yaml"}, "a.yaml"},
		{"neither", MergeWarning{Document: 2}, "document 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.Location())
		})
	}
}

func TestMergeWarnings_Filters(t *testing.T) {
	ws := MergeWarnings{
		newNameRenamedWarning(1, "b.yaml", CategorySchemas, "Pet", "Pet1"),
		newSharedSecurityRenamedWarning(1, "b.yaml", []string{"apiKey", "oauth"}),
		newNameDeduplicatedWarning(2, "", CategoryTags, "pets"),
	}

	assert.Len(t, ws.ByCategory(WarnNameRenamed), 1)
	assert.Empty(t, ws.ByCategory(WarnPathClash))
	assert.Len(t, ws.BySeverity(SeverityInfo), 2)
	assert.Len(t, ws.BySeverity(SeverityWarning), 1)
	assert.Len(t, ws.AtLeast(SeverityInfo), 3)
	assert.Len(t, ws.AtLeast(SeverityWarning), 1)

	assert.Equal(t, "schemas 'Pet' from document 2 renamed to 'Pet1'", ws[0].String())
	assert.Equal(t, "tags 'pets' from document 3 deduplicated (structurally equal)", ws[2].String())
	assert.Contains(t, ws[1].String(), "renamed scheme(s) apiKey, oauth")
}

func TestMergeWarnings_Summary(t *testing.T) {
	assert.Empty(t, MergeWarnings(nil).Summary())

	ws := MergeWarnings{
		newContextRootSkippedWarning(0, "a.yaml", "document 1 (a.yaml)", "/api", "http://other"),
		newAttributePromotedWarning(1, "", "security", "operation(s)", 3),
	}
	summary := ws.Summary()
	assert.Equal(t,
		"2 warning(s):\n"+
			"  - context root \"/api\" not applied to document 1 (a.yaml): server \"http://other\" does not end with it\n"+
			"  - security of document 2 pushed down to 3 operation(s)",
		summary)

	strs := ws.Strings()
	require.Len(t, strs, 2)
	assert.Equal(t, ws[1].Message, strs[1])
}
