// Package sanitize strips and masks sensitive fields from structured data
// before it is logged or returned to a client.
package sanitize

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultSensitiveFields is the policy applied when the caller does not
// override it. Field matching is case-sensitive.
var DefaultSensitiveFields = []string{"password", "token", "secret"}

// Sanitize returns a copy of data with every key named in sensitiveFields
// removed, recursing through maps, slices, arrays, pointers, and structs.
// Primitives pass through unchanged and the input is never mutated. When no
// fields are given the default policy applies.
//
// Cyclic values terminate: a reference already being walked is replaced
// with nil rather than recursed into.
func Sanitize(data any, sensitiveFields ...string) any {
	fields := sensitiveFields
	if len(fields) == 0 {
		fields = DefaultSensitiveFields
	}

	drop := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		drop[f] = struct{}{}
	}

	return walk(reflect.ValueOf(data), drop, map[uintptr]struct{}{})
}

// walk rebuilds v without dropped keys. visited holds the pointers of the
// containers currently on the walk stack, guarding against cycles.
func walk(v reflect.Value, drop map[string]struct{}, visited map[uintptr]struct{}) any {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		if v.Kind() == reflect.Pointer {
			if _, seen := visited[v.Pointer()]; seen {
				return nil
			}
			visited[v.Pointer()] = struct{}{}
			defer delete(visited, v.Pointer())
		}
		return walk(v.Elem(), drop, visited)

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		if _, seen := visited[v.Pointer()]; seen {
			return nil
		}
		visited[v.Pointer()] = struct{}{}
		defer delete(visited, v.Pointer())

		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key := keyString(iter.Key())
			if _, dropped := drop[key]; dropped {
				continue
			}
			out[key] = walk(iter.Value(), drop, visited)
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if _, seen := visited[v.Pointer()]; seen {
			return nil
		}
		visited[v.Pointer()] = struct{}{}
		defer delete(visited, v.Pointer())
		return walkList(v, drop, visited)

	case reflect.Array:
		return walkList(v, drop, visited)

	case reflect.Struct:
		out := make(map[string]any, v.NumField())
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := fieldName(field)
			if name == "" {
				continue
			}
			if _, dropped := drop[name]; dropped {
				continue
			}
			out[name] = walk(v.Field(i), drop, visited)
		}
		return out

	default:
		return v.Interface()
	}
}

// walkList rebuilds a slice or array element by element.
func walkList(v reflect.Value, drop map[string]struct{}, visited map[uintptr]struct{}) any {
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = walk(v.Index(i), drop, visited)
	}
	return out
}

// keyString renders a map key for policy matching. Non-string keys keep
// their formatted representation.
func keyString(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	if key.Kind() == reflect.Interface && key.Elem().Kind() == reflect.String {
		return key.Elem().String()
	}
	return fmt.Sprint(key.Interface())
}

// fieldName resolves the JSON-facing name of a struct field.
func fieldName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
