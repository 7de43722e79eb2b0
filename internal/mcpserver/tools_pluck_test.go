package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluckTool(t *testing.T) {
	input := pluckInput{
		Doc:  docInput{Content: testDocJSON},
		Keys: []string{"definitions", "Pet"},
	}
	result, output, err := handlePluck(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "#/definitions/Pet", output.Pointer)
	assert.Equal(t, "json", output.Format)
	assert.JSONEq(t, `{"type": "object", "properties": {"name": {"type": "string"}}}`, output.Document)
}

func TestPluckTool_FromFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "shared/name.json", `{"type": "string"}`)
	main := writeFixture(t, dir, "api.yaml", `definitions:
  Name:
    $ref: shared/name.json
  Pet:
    properties:
      name:
        $ref: '#/definitions/Name'
`)

	_, output, err := handlePluck(context.Background(), &mcp.CallToolRequest{}, pluckInput{
		Doc:  docInput{File: main},
		Keys: []string{"definitions", "Pet"},
	})
	require.NoError(t, err)
	assert.Equal(t, "yaml", output.Format)
	assert.Equal(t, "---\nproperties:\n  name:\n    type: string\n", output.Document)
}

func TestPluckTool_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   pluckInput
		wantMsg string
	}{
		{
			name:    "no keys",
			input:   pluckInput{Doc: docInput{Content: testDocJSON}},
			wantMsg: "keys must not be empty",
		},
		{
			name: "missing key",
			input: pluckInput{
				Doc:  docInput{Content: testDocJSON},
				Keys: []string{"definitions", "Dog"},
			},
			wantMsg: "could not resolve '#/definitions/Dog', 'Dog' not found",
		},
		{
			name: "bad output format",
			input: pluckInput{
				Doc:          docInput{Content: testDocJSON},
				Keys:         []string{"pet"},
				OutputFormat: "toml",
			},
			wantMsg: "invalid output_format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handlePluck(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.wantMsg)
		})
	}
}
