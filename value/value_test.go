package value

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := NewMap(0)
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	m.Set("alpha", "replaced")
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys(), "replacing a value keeps its position")
	v, ok := m.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "replaced", v)
}

func TestMapDelete(t *testing.T) {
	m := Of("a", 1, "b", 2, "c", 3)
	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())

	v, ok := m.Get("c")
	require.True(t, ok, "index must be rebuilt after delete")
	assert.Equal(t, 3, v)

	m.Set("b", 4)
	assert.Equal(t, []string{"a", "c", "b"}, m.Keys())
}

func TestMapZeroValueAndNil(t *testing.T) {
	var m Map
	m.Set("k", "v")
	assert.Equal(t, 1, m.Len())

	var nilMap *Map
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Keys())
	assert.False(t, nilMap.Has("k"))
	for range nilMap.All() {
		t.Fatal("nil map must not yield")
	}
}

func TestMapAllAllowsReplacingCurrentValue(t *testing.T) {
	m := Of("a", 1, "b", 2)
	for k, v := range m.All() {
		m.Set(k, v.(int)*10)
	}
	assert.Equal(t, map[string]any{"a": 10, "b": 20}, ToGo(m))
}

func TestMapAllStopsEarly(t *testing.T) {
	m := Of("a", 1, "b", 2, "c", 3)
	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestOfPanicsOnBadArguments(t *testing.T) {
	assert.Panics(t, func() { Of("a") })
	assert.Panics(t, func() { Of(1, "a") })
}

func TestMapOfRepeatedKey(t *testing.T) {
	m := MapOf(Entry{Key: "a", Value: 1}, Entry{Key: "b", Value: 2}, Entry{Key: "a", Value: 3})
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, 3, v)
}

func TestMarshalJSONKeepsOrder(t *testing.T) {
	m := Of("z", 1, "a", []any{"x", Of("inner", true)}, "m", nil)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":["x",{"inner":true}],"m":null}`, string(data))
	assert.Equal(t, string(data), m.String())
}

func TestMarshalJSONKeepsHTMLCharacters(t *testing.T) {
	m := Of("<k>", "a & b", "list", []any{"</script>"})
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"<k>":"a & b","list":["</script>"]}`, string(data))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		in   any
		want Kind
	}{
		{nil, Null},
		{true, Bool},
		{3, Number},
		{int64(3), Number},
		{uint64(3), Number},
		{2.5, Number},
		{"s", String},
		{[]any{}, Sequence},
		{NewMap(0), Mapping},
		{(*Map)(nil), Null},
		{map[string]any{}, Invalid},
		{struct{}{}, Invalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.in), "KindOf(%#v)", tt.in)
	}
	assert.Equal(t, "mapping", Mapping.String())
	assert.Equal(t, "invalid", Kind(42).String())
	assert.True(t, Sequence.IsContainer())
	assert.False(t, String.IsContainer())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nulls", nil, nil, true},
		{"int vs int64", 3, int64(3), true},
		{"int vs float", 3, 3.0, true},
		{"float mismatch", 3, 3.5, false},
		{"NaN", math.NaN(), math.NaN(), true},
		{"large uint64", uint64(math.MaxUint64), uint64(math.MaxUint64), true},
		{"string vs number", "3", 3, false},
		{"sequences", []any{1, "a"}, []any{1, "a"}, true},
		{"sequence order matters", []any{1, 2}, []any{2, 1}, false},
		{"mapping order does not matter", Of("a", 1, "b", 2), Of("b", 2, "a", 1), true},
		{"mapping extra key", Of("a", 1), Of("a", 1, "b", 2), false},
		{"mapping value differs", Of("a", 1), Of("a", 2), false},
		{"nested", Of("a", []any{Of("b", nil)}), Of("a", []any{Of("b", nil)}), true},
		{"invalid kinds", struct{}{}, struct{}{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestCopyIsDeep(t *testing.T) {
	inner := Of("leaf", "v")
	orig := Of("list", []any{inner}, "map", inner)
	cp := Copy(orig).(*Map)
	require.True(t, Equal(orig, cp))

	inner.Set("leaf", "changed")
	list, _ := cp.Get("list")
	got, _ := list.([]any)[0].(*Map).Get("leaf")
	assert.Equal(t, "v", got)

	m, _ := cp.Get("map")
	assert.NotSame(t, m, list.([]any)[0], "shared sub-trees must become distinct copies")
}

func TestFromGoAndToGo(t *testing.T) {
	in := map[string]any{
		"b":    []any{1, map[string]any{"y": 2, "x": 1}},
		"a":    "s",
		"tags": []string{"t1", "t2"},
		"env":  map[string]string{"K": "V"},
		"objs": []map[string]any{{"k": 1}},
	}
	v := FromGo(in)
	m, ok := v.(*Map)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "env", "objs", "tags"}, m.Keys(), "keys are sorted")

	b, _ := m.Get("b")
	nested := b.([]any)[1].(*Map)
	assert.Equal(t, []string{"x", "y"}, nested.Keys())

	assert.Equal(t, map[string]any{
		"b":    []any{1, map[string]any{"y": 2, "x": 1}},
		"a":    "s",
		"tags": []any{"t1", "t2"},
		"env":  map[string]any{"K": "V"},
		"objs": []any{map[string]any{"k": 1}},
	}, ToGo(v))
}

// genValue draws a random Value tree of bounded depth.
func genValue(depth int) *rapid.Generator[any] {
	return rapid.Custom(func(t *rapid.T) any {
		hi := 5
		if depth <= 0 {
			hi = 3
		}
		switch rapid.IntRange(0, hi).Draw(t, "kind") {
		case 0:
			return nil
		case 1:
			return rapid.Bool().Draw(t, "bool")
		case 2:
			return rapid.Int().Draw(t, "int")
		case 3:
			return rapid.String().Draw(t, "string")
		case 4:
			n := rapid.IntRange(0, 4).Draw(t, "len")
			out := make([]any, n)
			for i := range out {
				out[i] = genValue(depth-1).Draw(t, "item")
			}
			return out
		default:
			keys := rapid.SliceOfNDistinct(rapid.StringN(0, 6, -1), 0, 4, rapid.ID[string]).Draw(t, "keys")
			m := NewMap(len(keys))
			for _, k := range keys {
				m.Set(k, genValue(depth-1).Draw(t, "val"))
			}
			return m
		}
	})
}

func TestCopyEqualProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := genValue(3).Draw(t, "v")
		if !Equal(v, Copy(v)) {
			t.Fatalf("copy differs from original: %#v", v)
		}
		if !Equal(v, FromGo(ToGo(v))) {
			t.Fatalf("ToGo/FromGo changed structure: %#v", v)
		}
	})
}
