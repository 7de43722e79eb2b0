package mcpserver

import (
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error returns empty string",
			err:  nil,
			want: "",
		},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("could not resolve 'a.json', '/home/user/secret/a.json' file not found"),
			want: "could not resolve 'a.json', '<path>' file not found",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf("could not resolve '#/a/b', 'b' not found in mapping"),
			want: "could not resolve '#/a/b', 'b' not found in mapping",
		},
		{
			name: "strips multiple paths",
			err:  fmt.Errorf("cycle /tmp/a.yaml#/x -> /tmp/b.yaml#/y"),
			want: "cycle <path>#/x -> <path>#/y",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(fmt.Errorf("reading /tmp/x.json failed"))
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "reading <path> failed", text.Text)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, newServer())
}

func TestKeysPointer(t *testing.T) {
	assert.Equal(t, "#/definitions/Pet", keysPointer([]string{"definitions", "Pet"}))
	assert.Equal(t, "#/a", keysPointer([]string{"a"}))
}
