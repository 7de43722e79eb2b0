package value

import (
	"math"
	"slices"
)

// Value is any of the dynamic types listed in the package documentation.
type Value = any

// Kind identifies the shape of a Value.
type Kind int

const (
	// Invalid is returned for Go types that are not Values.
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	Sequence
	Mapping
)

var kindNames = [...]string{
	Invalid:  "invalid",
	Null:     "null",
	Bool:     "boolean",
	Number:   "number",
	String:   "string",
	Sequence: "sequence",
	Mapping:  "mapping",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// IsContainer reports whether values of this kind hold other values.
func (k Kind) IsContainer() bool {
	return k == Sequence || k == Mapping
}

// KindOf classifies v.
func KindOf(v Value) Kind {
	switch t := v.(type) {
	case nil:
		return Null
	case bool:
		return Bool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return Number
	case string:
		return String
	case []any:
		return Sequence
	case *Map:
		if t == nil {
			return Null
		}
		return Mapping
	default:
		return Invalid
	}
}

// Equal reports whether a and b are structurally equal. Mappings are equal
// when they hold the same keys with equal values, regardless of key order.
// Numbers compare by value across Go numeric types.
func Equal(a, b Value) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case Null:
		return true
	case Bool:
		return a.(bool) == b.(bool)
	case String:
		return a.(string) == b.(string)
	case Number:
		return numbersEqual(a, b)
	case Sequence:
		return slices.EqualFunc(a.([]any), b.([]any), Equal)
	case Mapping:
		ma, mb := a.(*Map), b.(*Map)
		if ma.Len() != mb.Len() {
			return false
		}
		for k, va := range ma.All() {
			vb, ok := mb.Get(k)
			if !ok || !Equal(va, vb) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Copy returns a deep copy of v. Scalars are returned as-is.
func Copy(v Value) Value {
	switch t := v.(type) {
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Copy(item)
		}
		return out
	case *Map:
		if t == nil {
			return t
		}
		out := NewMap(t.Len())
		for k, item := range t.All() {
			out.Set(k, Copy(item))
		}
		return out
	default:
		return v
	}
}

// numbersEqual compares two numeric values. Integers compare exactly;
// anything involving a float compares as float64.
func numbersEqual(a, b Value) bool {
	ia, aInt := asInt(a)
	ib, bInt := asInt(b)
	if aInt && bInt {
		return ia == ib
	}
	fa, fb := asFloat(a), asFloat(b)
	if math.IsNaN(fa) && math.IsNaN(fb) {
		return true
	}
	return fa == fb
}

// asInt returns v as an int64 when v is an integer representable in int64.
func asInt(v Value) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat(v Value) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		i, _ := asInt(v)
		return float64(i)
	}
}
