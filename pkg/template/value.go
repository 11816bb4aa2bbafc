package template

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Truthy reports whether v selects the true branch of a conditional.
// nil, false, numeric zero, NaN and the empty string are falsy. Everything
// else is truthy, including empty slices and empty maps: templates use
// {{#if field}} to ask whether a field is present, not whether it is empty.
func Truthy(v any) bool {
	if isNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// Stringify returns the text a placeholder resolving to v is replaced with.
// No escaping is applied.
func Stringify(v any) string {
	if isNil(v) {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatNumber(rv.Float(), 32)
	case reflect.Float64:
		return formatNumber(rv.Float(), 64)
	case reflect.Slice, reflect.Array:
		items, _ := asSequence(v)
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// formatNumber renders f the way a JSON number prints in templates: plain
// decimals in [1e-6, 1e21), exponent form outside it.
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 {
		// includes -0
		return "0"
	}
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	// Go pads exponents to two digits: 1e+06, 1e-07.
	if i := strings.IndexByte(s, 'e'); i >= 0 && len(s) > i+3 && s[i+2] == '0' {
		s = s[:i+2] + s[i+3:]
	}
	return s
}
