package lintrc

import (
	"math"
	"reflect"
)

// NormalizeValue converts a decoded option value into the canonical shape
// used by Setting options: integral numbers become int, other numbers
// float64, sequences []any and mappings map[string]any.
//
// Decoders for the different document formats produce slightly different
// Go types for the same literal; normalizing lets settings loaded from
// HCL, JSON, YAML or the plugin transport compare equal.
func NormalizeValue(v any) any {
	switch t := v.(type) {
	case nil, bool, string:
		return t
	case float32:
		return normalizeFloat(float64(t))
	case float64:
		return normalizeFloat(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = NormalizeValue(e)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = NormalizeValue(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if ks, ok := k.(string); ok {
				out[ks] = NormalizeValue(e)
			}
		}
		return out
	}
	if n, ok := toInt(v); ok {
		return n
	}
	return v
}

// maxExactFloatInt is the largest magnitude up to which every integer is
// exactly representable as a float64.
const maxExactFloatInt = 1 << 53

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && f >= -maxExactFloatInt && f <= maxExactFloatInt {
		return int(f)
	}
	return f
}

// toInt reports the integer value of any integer kind, or of a float with
// no fractional part.
func toInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) {
			return int(f), true
		}
	}
	return 0, false
}

// copyValue returns a deep copy of a normalized value.
func copyValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
