package referrors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMap struct{ n int }

func (f fakeMap) Len() int { return f.n }

func TestInternalResolutionError(t *testing.T) {
	t.Run("Error message names pointer and segment", func(t *testing.T) {
		err := &InternalResolutionError{Ref: "#/a/missing", Segment: "missing", At: fakeMap{n: 2}}
		assert.Equal(t, "could not resolve '#/a/missing', 'missing' not found in mapping of 2 keys", err.Error())
	})

	t.Run("Error message for scalar stop point", func(t *testing.T) {
		err := &InternalResolutionError{Ref: "#/a/b", Segment: "b", At: "text"}
		assert.Equal(t, `could not resolve '#/a/b', 'b' not found in string "text"`, err.Error())
	})

	t.Run("Error message for sequence and null", func(t *testing.T) {
		seq := &InternalResolutionError{Ref: "#/list/0", Segment: "0", At: []any{1, 2, 3}}
		assert.Contains(t, seq.Error(), "sequence of 3 items")
		null := &InternalResolutionError{Ref: "#/x/y", Segment: "y", At: nil}
		assert.Contains(t, null.Error(), "in null")
	})

	t.Run("Is matches its own sentinel and ErrResolution", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &InternalResolutionError{Ref: "#/x"})
		assert.ErrorIs(t, err, ErrInternalResolution)
		assert.ErrorIs(t, err, ErrResolution)
		assert.NotErrorIs(t, err, ErrFileResolution)
	})
}

func TestFileResolutionError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &FileResolutionError{Ref: "/does/not/exist#/and/matter", Path: "/does/not/exist"}
		assert.Equal(t, "could not resolve '/does/not/exist#/and/matter', '/does/not/exist' file not found", err.Error())
	})

	t.Run("Error message keeps not-found wording for missing files", func(t *testing.T) {
		err := &FileResolutionError{Ref: "x.json", Path: "/tmp/x.json", Cause: fmt.Errorf("stat: %w", fs.ErrNotExist)}
		assert.Equal(t, "could not resolve 'x.json', '/tmp/x.json' file not found", err.Error())
	})

	t.Run("Error message names other causes", func(t *testing.T) {
		err := &FileResolutionError{Ref: "x.json", Path: "/tmp/x.json", Cause: errors.New("permission denied")}
		assert.Equal(t, "could not resolve 'x.json', '/tmp/x.json' could not be read: permission denied", err.Error())
		assert.NotContains(t, err.Error(), "file not found")
	})

	t.Run("Unwrap exposes the I/O cause", func(t *testing.T) {
		err := &FileResolutionError{Ref: "x.json", Path: "/tmp/x.json", Cause: fs.ErrNotExist}
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.ErrorIs(t, err, ErrFileResolution)
		assert.ErrorIs(t, err, ErrResolution)
	})

	t.Run("As extracts the resolved path", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", &FileResolutionError{Ref: "child.json#/k", Path: "/root/child.json"})
		var fileErr *FileResolutionError
		require.True(t, errors.As(err, &fileErr))
		assert.Equal(t, "/root/child.json", fileErr.Path)
	})
}

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name     string
		err      *DecodeError
		expected string
	}{
		{"minimal", &DecodeError{}, "could not decode"},
		{"path only", &DecodeError{Path: "a.json"}, "could not decode 'a.json'"},
		{"path and format", &DecodeError{Path: "a.yaml", Format: "yaml"}, "could not decode 'a.yaml' as yaml"},
		{
			"all fields",
			&DecodeError{Path: "a.json", Format: "json", Line: 3, Column: 7, Cause: errors.New("unexpected token")},
			"could not decode 'a.json' as json at line 3, column 7: unexpected token",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrDecode)
			assert.ErrorIs(t, tt.err, ErrResolution)
		})
	}
}

func TestResolutionError(t *testing.T) {
	t.Run("web reference", func(t *testing.T) {
		err := &ResolutionError{Ref: "http://x/y#/z", Scheme: "http", Message: "web resolution not implemented"}
		assert.Equal(t, "web resolution not implemented: http://x/y#/z", err.Error())
		assert.ErrorIs(t, err, ErrResolution)
		assert.ErrorIs(t, err, ErrUnsupportedScheme)
	})

	t.Run("general failure without scheme", func(t *testing.T) {
		err := &ResolutionError{}
		assert.Equal(t, "resolution error", err.Error())
		assert.NotErrorIs(t, err, ErrUnsupportedScheme)
	})
}

func TestCycleError(t *testing.T) {
	err := &CycleError{Chain: []string{"#/a", "#/b", "#/a"}}
	assert.Equal(t, "circular reference: #/a -> #/b -> #/a", err.Error())
	assert.ErrorIs(t, err, ErrCircularReference)
	assert.ErrorIs(t, err, ErrResolution)
	assert.Equal(t, "circular reference", (&CycleError{}).Error())
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "ref_depth", Limit: 100, Actual: 101, Message: "reference chain too deep"}
	assert.Equal(t, "resource limit exceeded: ref_depth (limit: 100, actual: 101): reference chain too deep", err.Error())
	assert.ErrorIs(t, err, ErrResourceLimit)
	assert.ErrorIs(t, err, ErrResolution)
	assert.Equal(t, "resource limit exceeded", (&ResourceLimitError{}).Error())
}

func TestConfigError(t *testing.T) {
	cause := errors.New("not an integer")
	err := &ConfigError{Option: "resolver.max_depth", Value: "abc", Message: "invalid value", Cause: cause}
	assert.Equal(t, "configuration error for resolver.max_depth (value: abc): invalid value: not an integer", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrResolution, "config errors are not resolution errors")
}
