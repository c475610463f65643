package parser

import (
	"time"

	"github.com/erraggy/oasmerge/oaserrors"
)

// This file contains helper functions for deep copying OAS-typed polymorphic fields.
// These helpers understand the OAS specification semantics for fields that use
// any types but have well-defined possible types per the OpenAPI Specification. A value outside
// those types is a model shape error and panics with *oaserrors.ShapeError;
// Copy recovers it.

func shapePanic(field string, v any, msg string) {
	panic(&oaserrors.ShapeError{Path: field, Value: v, Message: msg})
}

// deepCopySchemaType handles Schema.Type which can be:
// - string (OAS 3.0, 3.1)
// - []string (OAS 3.1+ for type arrays like ["string", "null"])
// - []any (YAML decodes type arrays this way)
func deepCopySchemaType(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return t // strings are immutable
	case []string:
		cp := make([]string, len(t))
		copy(cp, t)
		return cp
	case []any:
		return deepCopyJSONValue(t, "schema.type")
	default:
		shapePanic("schema.type", v, "expected string or list of strings")
		return nil
	}
}

// deepCopySchemaOrBool handles keywords such as additionalProperties that
// hold a bool or a *Schema. field names the keyword in shape errors.
func deepCopySchemaOrBool(v any, field string) any {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return t
	case *Schema:
		if t == nil {
			return (*Schema)(nil)
		}
		return t.DeepCopy()
	default:
		shapePanic("schema."+field, v, "expected bool or schema")
		return nil
	}
}

// deepCopyJSONValue recursively deep copies any JSON-compatible value.
// This handles Default, Example, Const, and other fields that can hold
// arbitrary JSON values.
func deepCopyJSONValue(v any, field string) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string, bool, float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, time.Time:
		return t // Primitives copy by value
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyJSONValue(item, field)
		}
		return cp
	case []string:
		cp := make([]string, len(t))
		copy(cp, t)
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyJSONValue(item, field+"."+k)
		}
		return cp
	default:
		shapePanic(field, v, "expected a JSON value")
		return nil
	}
}

// deepCopyAnySlice deep copies a []any slice of JSON values such as enum.
func deepCopyAnySlice(v []any, field string) []any {
	if v == nil {
		return nil
	}
	cp := make([]any, len(v))
	for i, item := range v {
		cp[i] = deepCopyJSONValue(item, field)
	}
	return cp
}

// deepCopyExtensions deep copies a map[string]any containing x-* extensions.
// Extension values can be any JSON-compatible value.
func deepCopyExtensions(v map[string]any) map[string]any {
	if v == nil {
		return nil
	}
	cp := make(map[string]any, len(v))
	for k, item := range v {
		cp[k] = deepCopyJSONValue(item, k)
	}
	return cp
}

// deepCopyMap deep copies a map whose values know how to copy themselves.
// Nil entries stay nil.
func deepCopyMap[V interface{ DeepCopy() V }](v map[string]V) map[string]V {
	if v == nil {
		return nil
	}
	cp := make(map[string]V, len(v))
	for k, item := range v {
		cp[k] = item.DeepCopy()
	}
	return cp
}

// deepCopySlice deep copies a slice whose elements know how to copy themselves.
func deepCopySlice[V interface{ DeepCopy() V }](v []V) []V {
	if v == nil {
		return nil
	}
	cp := make([]V, len(v))
	for i, item := range v {
		cp[i] = item.DeepCopy()
	}
	return cp
}

// deepCopyStrings copies a []string preserving nil.
func deepCopyStrings(v []string) []string {
	if v == nil {
		return nil
	}
	cp := make([]string, len(v))
	copy(cp, v)
	return cp
}

// deepCopyStringSliceMap deep copies a map[string][]string such as dependentRequired.
func deepCopyStringSliceMap(v map[string][]string) map[string][]string {
	if v == nil {
		return nil
	}
	cp := make(map[string][]string, len(v))
	for k, val := range v {
		cp[k] = deepCopyStrings(val)
	}
	return cp
}

// deepCopyStringMap deep copies a map[string]string.
func deepCopyStringMap(v map[string]string) map[string]string {
	if v == nil {
		return nil
	}
	cp := make(map[string]string, len(v))
	for k, val := range v {
		cp[k] = val
	}
	return cp
}

// deepCopyPaths deep copies a Paths map (map[string]*PathItem).
func deepCopyPaths(v Paths) Paths {
	if v == nil {
		return nil
	}
	return Paths(deepCopyMap(map[string]*PathItem(v)))
}

// deepCopySecurityRequirements deep copies a slice of SecurityRequirement.
// A nil slice stays nil and an empty slice stays empty, since the two mean
// different things on an operation.
func deepCopySecurityRequirements(v []SecurityRequirement) []SecurityRequirement {
	if v == nil {
		return nil
	}
	cp := make([]SecurityRequirement, len(v))
	for i, req := range v {
		if req != nil {
			cp[i] = make(SecurityRequirement, len(req))
			for k, scopes := range req {
				cp[i][k] = deepCopyStrings(scopes)
			}
		}
	}
	return cp
}

// deepCopyServerVariables deep copies a map of ServerVariable (value type, not pointer).
func deepCopyServerVariables(v map[string]ServerVariable) map[string]ServerVariable {
	if v == nil {
		return nil
	}
	cp := make(map[string]ServerVariable, len(v))
	for k, sv := range v {
		cp[k] = ServerVariable{
			Enum:        deepCopyStrings(sv.Enum),
			Default:     sv.Default,
			Description: sv.Description,
			Extra:       deepCopyExtensions(sv.Extra),
		}
	}
	return cp
}

func deepCopyFloat64Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func deepCopyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func deepCopyBoolPtr(v *bool) *bool {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}
