package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand(t *testing.T) {
	workspace(t, map[string]string{
		"specs/a.json":      `{"x": {"$ref": "shared.yaml#/name"}}`,
		"specs/b.yaml":      "y:\n  $ref: shared.yaml\n",
		"specs/shared.yaml": "name: pet\n",
	})

	code, stdout, stderr := run(t, "batch", "out", "specs/a.json", "specs/b.yaml")
	require.Equal(t, 0, code, stderr)

	outA := filepath.Join("out", "a.json")
	outB := filepath.Join("out", "b.yaml")
	assert.Equal(t,
		"Successfully resolved 'specs/a.json' into '"+outA+"'.\n"+
			"Successfully resolved 'specs/b.yaml' into '"+outB+"'.\n",
		stdout)
	assert.JSONEq(t, `{"x": "pet"}`, readFile(t, outA))
	assert.Equal(t, "---\ny:\n  name: pet\n", readFile(t, outB))
}

func TestBatchCommand_Errors(t *testing.T) {
	t.Run("one input fails", func(t *testing.T) {
		workspace(t, map[string]string{
			"a.json": `{"x": 1}`,
			"b.json": `{"y": {"$ref": "missing.json"}}`,
		})

		code, stdout, stderr := run(t, "batch", "out", "a.json", "b.json")
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Error: b.json: could not resolve 'missing.json'")
		assert.NoDirExists(t, "out")
	})

	t.Run("colliding names", func(t *testing.T) {
		workspace(t, map[string]string{
			"v1/api.json": `{}`,
			"v2/api.json": `{}`,
		})

		code, _, stderr := run(t, "batch", "out", "v1/api.json", "v2/api.json")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "would both be written to")
	})

	t.Run("no inputs", func(t *testing.T) {
		workspace(t, nil)

		code, _, stderr := run(t, "batch", "out")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "requires at least 2 arg(s)")
	})
}
