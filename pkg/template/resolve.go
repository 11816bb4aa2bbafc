package template

import (
	"reflect"
	"strconv"
	"strings"
)

// Context is the data a template is rendered against. Values are strings,
// numbers, booleans, nested maps or slices of those.
type Context = map[string]any

// Resolve looks up a dot separated path in ctx. The second return value is
// false when any segment is missing or nil, which is distinct from a value
// that resolved to false, 0 or "".
func Resolve(ctx Context, path string) (any, bool) {
	var current any = ctx
	for _, key := range strings.Split(path, ".") {
		if isNil(current) {
			return nil, false
		}
		next, ok := lookup(current, key)
		if !ok {
			return nil, false
		}
		current = next
	}
	if isNil(current) {
		return nil, false
	}
	return current, true
}

func lookup(container any, key string) (any, bool) {
	if m, ok := container.(map[string]any); ok {
		v, found := m[key]
		return v, found
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	}
	return nil, false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// asMapping returns v as a map[string]any when it is a map keyed by strings.
func asMapping(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, m != nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// asSequence returns the items of any slice or array value, in order.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, s != nil
	case []string:
		items := make([]any, len(s))
		for i, item := range s {
			items[i] = item
		}
		return items, s != nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
