// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

package ast

import (
	"fmt"
	"maps"
	"slices"
)

// ToValue converts a Go value of a basic type into the corresponding
// Value. The input must be a bool, string, integer, float, nil, a
// Value, a []any of such values, or a map[string]any of such values.
// Map keys are added in sorted order so that construction is
// deterministic. ToValue panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		var out Object
		for _, key := range slices.Sorted(maps.Keys(t)) {
			out.Set(key, ToValue(t[key]))
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value type %T", v))
	}
}

// Field constructs an object member with the given key and value.
// The value must be one of the types accepted by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}
