package value

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/goccy/go-json"
)

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key   string
	Value any
}

// Map is a mapping of unique string keys to Values that preserves insertion
// order. The zero value is an empty map ready to use.
//
// A Map is not safe for concurrent use.
type Map struct {
	entries []Entry
	index   map[string]int
}

// NewMap returns an empty Map with room for size entries.
func NewMap(size int) *Map {
	return &Map{
		entries: make([]Entry, 0, size),
		index:   make(map[string]int, size),
	}
}

// MapOf builds a Map from entries, in order. A repeated key keeps its first
// position and takes the later value.
func MapOf(entries ...Entry) *Map {
	m := NewMap(len(entries))
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Of builds a Map from alternating key/value arguments:
//
//	value.Of("a", "x", "b", value.Of("$ref", "#/a"))
//
// It panics if a key is not a string or the argument count is odd, so it is
// meant for literals in code and tests.
func Of(pairs ...any) *Map {
	if len(pairs)%2 != 0 {
		panic("value.Of: odd number of arguments")
	}
	m := NewMap(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("value.Of: key at position %d is %T, not string", i, pairs[i]))
		}
		m.Set(k, pairs[i+1])
	}
	return m
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key. An existing key keeps its position.
func (m *Map) Set(key string, v any) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: v})
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
	return true
}

// All iterates over the entries in insertion order.
//
// Replacing the value of the key currently being visited with Set is allowed;
// adding or deleting keys during iteration is not.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for i := 0; i < len(m.entries); i++ {
			if !yield(m.entries[i].Key, m.entries[i].Value) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in insertion order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.MarshalNoEscape(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.MarshalNoEscape(e.Value)
		if err != nil {
			return nil, fmt.Errorf("value: marshaling key %q: %w", e.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the map as compact JSON, for diagnostics.
func (m *Map) String() string {
	data, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<map of %d keys>", m.Len())
	}
	return string(data)
}
