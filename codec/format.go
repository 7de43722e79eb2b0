package codec

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is a document serialization format.
type Format string

const (
	// FormatJSON is JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

func (f Format) String() string {
	return string(f)
}

// ParseFormat maps a user-supplied format name to a Format. It accepts
// "json", "yaml" and "yml" in any case.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// FormatForPath picks the output format for a file name: YAML for .yml and
// .yaml, JSON for everything else.
func FormatForPath(name string) Format {
	if isYAMLPath(name) {
		return FormatYAML
	}
	return FormatJSON
}

// DetectFormat picks the format to decode data with. A .yml or .yaml
// extension, or content that opens with a "---" document marker, selects
// YAML. Everything else is decoded as JSON.
func DetectFormat(path string, data []byte) Format {
	if isYAMLPath(path) {
		return FormatYAML
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("---")) {
		return FormatYAML
	}
	return FormatJSON
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
