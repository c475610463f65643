package parser

// This file contains helper functions for equality comparison of OAS-typed fields.
// These helpers understand the OAS specification semantics for fields that use
// any types but have well-defined possible types per the OpenAPI Specification.
// The functions mirror the patterns in deepcopy_helpers.go, including the
// shape error panic for values outside those types.

import (
	"maps"
	"slices"
	"time"
)

// Equal reports whether a and b are structurally equal.
// A value of a kind the model does not allow is reported as an
// *oaserrors.ShapeError instead of panicking.
func Equal(a, b *Document) (eq bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			eq, err = false, RecoverShapeError(r)
		}
	}()
	return a.Equals(b), nil
}

// equalFloat64Ptr compares two *float64 pointers for equality.
// Both nil returns true, both non-nil with equal values returns true.
func equalFloat64Ptr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// equalIntPtr compares two *int pointers for equality.
func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// equalBoolPtr compares two *bool pointers for equality.
func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// equalStringSlice compares two string slices for equality.
// Order-sensitive comparison. Nil and empty slices are considered equal.
func equalStringSlice(a, b []string) bool {
	return slices.Equal(a, b)
}

// equalStringSliceMap compares two map[string][]string maps such as dependentRequired.
func equalStringSliceMap(a, b map[string][]string) bool {
	return maps.EqualFunc(a, b, equalStringSlice)
}

// equalStringMap compares two map[string]string maps. Nil and empty maps are considered equal.
func equalStringMap(a, b map[string]string) bool {
	return maps.Equal(a, b)
}

// equalMap compares two maps whose values know how to compare themselves.
// Key sets must match; nil and empty maps are considered equal.
func equalMap[V interface{ Equals(V) bool }](a, b map[string]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !va.Equals(vb) {
			return false
		}
	}
	return true
}

// equalSlice compares two slices pairwise in order. Nil and empty slices are considered equal.
func equalSlice[V interface{ Equals(V) bool }](a, b []V) bool {
	return slices.EqualFunc(a, b, func(x, y V) bool { return x.Equals(y) })
}

// equalExtensions compares two extension maps. Nil and empty maps are considered equal.
func equalExtensions(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !equalJSONValue(va, vb, k) {
			return false
		}
	}
	return true
}

// equalSecurityRequirements compares two requirement lists pairwise in order.
func equalSecurityRequirements(a, b []SecurityRequirement) bool {
	return slices.EqualFunc(a, b, func(x, y SecurityRequirement) bool {
		return maps.EqualFunc(x, y, slices.Equal)
	})
}

// equalServerVariables compares two server variable maps by value.
func equalServerVariables(a, b map[string]ServerVariable) bool {
	return maps.EqualFunc(a, b, func(x, y ServerVariable) bool {
		return x.Default == y.Default &&
			x.Description == y.Description &&
			equalStringSlice(x.Enum, y.Enum) &&
			equalExtensions(x.Extra, y.Extra)
	})
}

// jsonKind classifies a JSON value, panicking with a shape error for
// anything that is not JSON-shaped.
type jsonKind int

const (
	jsonNull jsonKind = iota
	jsonBool
	jsonString
	jsonNumber
	jsonTime
	jsonArray
	jsonStringArray
	jsonObject
)

func kindOf(v any, field string) jsonKind {
	switch v.(type) {
	case nil:
		return jsonNull
	case bool:
		return jsonBool
	case string:
		return jsonString
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return jsonNumber
	case time.Time:
		return jsonTime
	case []any:
		return jsonArray
	case []string:
		return jsonStringArray
	case map[string]any:
		return jsonObject
	default:
		shapePanic(field, v, "expected a JSON value")
		return jsonNull
	}
}

// toFloat64 widens any numeric kind accepted by kindOf.
func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case int16:
		return float64(n)
	case int8:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case uint32:
		return float64(n)
	case uint16:
		return float64(n)
	case uint8:
		return float64(n)
	}
	return 0
}

// equalJSONValue compares two JSON values by kind and value.
// Numbers of different Go kinds compare by numeric value.
func equalJSONValue(a, b any, field string) bool {
	ka, kb := kindOf(a, field), kindOf(b, field)
	if ka != kb {
		return false
	}
	switch ka {
	case jsonNull:
		return true
	case jsonBool:
		return a.(bool) == b.(bool)
	case jsonString:
		return a.(string) == b.(string)
	case jsonNumber:
		return toFloat64(a) == toFloat64(b)
	case jsonTime:
		return a.(time.Time).Equal(b.(time.Time))
	case jsonStringArray:
		return equalStringSlice(a.([]string), b.([]string))
	case jsonArray:
		return slices.EqualFunc(a.([]any), b.([]any), func(x, y any) bool {
			return equalJSONValue(x, y, field)
		})
	case jsonObject:
		ma, mb := a.(map[string]any), b.(map[string]any)
		if len(ma) != len(mb) {
			return false
		}
		for k, va := range ma {
			vb, ok := mb[k]
			if !ok || !equalJSONValue(va, vb, field+"."+k) {
				return false
			}
		}
		return true
	}
	return false
}

// equalAnySlice compares two []any slices of JSON values. Nil and empty slices are considered equal.
func equalAnySlice(a, b []any, field string) bool {
	return slices.EqualFunc(a, b, func(x, y any) bool { return equalJSONValue(x, y, field) })
}

// equalSchemaType handles Schema.Type which can be:
// - string (OAS 3.0, 3.1)
// - []string (OAS 3.1+ for type arrays like ["string", "null"])
// - []any (YAML may unmarshal as []any instead of []string)
func equalSchemaType(a, b any) bool {
	for _, v := range [...]any{a, b} {
		switch v.(type) {
		case nil, string, []string, []any:
		default:
			shapePanic("schema.type", v, "expected string or list of strings")
		}
	}
	return equalJSONValue(a, b, "schema.type")
}

// equalSchemaOrBool handles keywords such as additionalProperties that hold
// a bool or a *Schema. field names the keyword in shape errors.
func equalSchemaOrBool(a, b any, field string) bool {
	for _, v := range [...]any{a, b} {
		switch v.(type) {
		case nil, bool, *Schema:
		default:
			shapePanic("schema."+field, v, "expected bool or schema")
		}
	}
	switch ta := a.(type) {
	case nil:
		return b == nil
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	case *Schema:
		tb, ok := b.(*Schema)
		return ok && ta.Equals(tb)
	}
	return false
}
