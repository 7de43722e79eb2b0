// Package fileutil holds the file modes and path checks used when writing
// resolved documents.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for resolved output documents,
// which are usually consumed by other tools.
const ReadableByAll os.FileMode = 0o644

// OwnerDir is the permission mode for output directories created on demand.
const OwnerDir os.FileMode = 0o750

// WriteOutput writes a resolved document to path.
func WriteOutput(path string, data []byte) error {
	return os.WriteFile(path, data, ReadableByAll) //nolint:gosec // G306 - output documents are meant to be shared
}

// OutputPaths names one output per input inside dir, after the input's base
// name. Two inputs with the same base name, or an output that would
// overwrite an input, are rejected.
func OutputPaths(dir string, inputs []string) ([]string, error) {
	outputs := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := filepath.Join(dir, filepath.Base(in))
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("inputs %s and %s would both be written to %s", prev, in, out)
		}
		seen[out] = in
		outputs[i] = out
	}
	for _, in := range inputs {
		absIn, err := filepath.Abs(in)
		if err != nil {
			return nil, fmt.Errorf("invalid input path %s: %w", in, err)
		}
		for _, out := range outputs {
			absOut, err := filepath.Abs(out)
			if err != nil {
				return nil, fmt.Errorf("invalid output path %s: %w", out, err)
			}
			if absOut == absIn {
				return nil, fmt.Errorf("output file %s would overwrite input file %s", out, in)
			}
		}
	}
	return outputs, nil
}
