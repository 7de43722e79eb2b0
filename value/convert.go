package value

import (
	"slices"
)

// FromGo converts a tree of plain Go values, as produced by encoding/json or
// YAML decoders into any, into a Value tree. map[string]any becomes *Map with
// keys in sorted order, since Go maps carry no order. []string and
// map[string]string are widened to their any forms. A *Map is deep-copied.
func FromGo(v any) Value {
	switch t := v.(type) {
	case *Map:
		return Copy(t)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		m := NewMap(len(keys))
		for _, k := range keys {
			m.Set(k, FromGo(t[k]))
		}
		return m
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, s := range t {
			m[k] = s
		}
		return FromGo(m)
	case []any:
		if t == nil {
			return []any(nil)
		}
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = FromGo(item)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = FromGo(item)
		}
		return out
	default:
		return v
	}
}

// ToGo converts a Value tree into plain Go values: *Map becomes
// map[string]any and sequences become fresh []any slices.
func ToGo(v Value) any {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			return nil
		}
		out := make(map[string]any, t.Len())
		for k, item := range t.All() {
			out[k] = ToGo(item)
		}
		return out
	case []any:
		if t == nil {
			return []any(nil)
		}
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = ToGo(item)
		}
		return out
	default:
		return v
	}
}
