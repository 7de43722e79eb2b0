// Package value defines the in-memory representation of decoded JSON and YAML
// documents.
//
// A Value is one of:
//
//   - nil (null)
//   - bool
//   - a number: int, int64, uint64 or float64 (other Go integer and float
//     kinds are accepted and treated as numbers)
//   - string
//   - []any, an ordered sequence of Values
//   - *Map, a mapping of unique string keys to Values that remembers the
//     order keys were inserted in
//
// Documents are plain trees: a decoded document never shares sub-trees, and
// the resolver keeps it that way by copying every substituted fragment.
// [KindOf] classifies a Value, [Equal] compares two trees structurally and
// [Copy] deep-copies one. [FromGo] and [ToGo] convert between Values and the
// map[string]any trees produced by encoding/json style decoders.
package value
