package codec

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/dref/referrors"
	"github.com/erraggy/dref/value"
	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Decoder turns raw file content into a Value tree. The zero value detects
// the format from the path and content; set Format to force one.
type Decoder struct {
	Format Format
}

// Decode decodes data read from path. Malformed content yields a
// *referrors.DecodeError naming path.
func (d Decoder) Decode(path string, data []byte) (value.Value, error) {
	format := d.Format
	if format == "" {
		format = DetectFormat(path, data)
	}
	if format == FormatJSON {
		if err := validateJSON(path, data); err != nil {
			return nil, err
		}
	}

	// Decoding into any rejects self-containing anchors and excessive
	// aliasing, neither of which nodeToValue guards against.
	var plain any
	if err := yaml.Unmarshal(data, &plain); err != nil {
		return nil, &referrors.DecodeError{Path: path, Format: string(format), Cause: err}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &referrors.DecodeError{Path: path, Format: string(format), Cause: err}
	}
	v, err := nodeToValue(&doc)
	if err != nil {
		return nil, &referrors.DecodeError{Path: path, Format: string(format), Cause: err}
	}
	return v, nil
}

// Decode decodes data with a zero Decoder.
func Decode(path string, data []byte) (value.Value, error) {
	return Decoder{}.Decode(path, data)
}

// ReadFile reads and decodes the file at path. I/O errors are returned
// wrapped, so errors.Is(err, fs.ErrNotExist) works on a missing file.
func ReadFile(path string) (value.Value, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is user input
	if err != nil {
		return nil, fmt.Errorf("codec: reading %s: %w", path, err)
	}
	return Decode(path, data)
}

// validateJSON rejects content that is YAML but not JSON, which the YAML
// parser below would otherwise accept.
func validateJSON(path string, data []byte) error {
	if json.Valid(data) {
		return nil
	}
	var discard any
	err := json.Unmarshal(data, &discard)
	if err == nil {
		err = errors.New("invalid JSON")
	}
	decodeErr := &referrors.DecodeError{Path: path, Format: string(FormatJSON), Cause: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		decodeErr.Line, decodeErr.Column = position(data, syntaxErr.Offset)
	}
	return decodeErr
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, column int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte("\n")) + 1
	column = int(offset) - bytes.LastIndexByte(before, '\n')
	return line, column
}

// nodeToValue converts a parsed YAML node into a Value, keeping mapping keys
// in document order.
func nodeToValue(node *yaml.Node) (value.Value, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return nodeToValue(node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, fmt.Errorf("line %d: unresolved alias %q", node.Line, node.Value)
		}
		return nodeToValue(node.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := nodeToValue(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		return mappingToValue(node)
	case yaml.ScalarNode:
		return scalarToValue(node)
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %v", node.Line, node.Kind)
	}
}

func mappingToValue(node *yaml.Node) (value.Value, error) {
	m := value.NewMap(len(node.Content) / 2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			merges = append(merges, valNode)
			continue
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		v, err := nodeToValue(valNode)
		if err != nil {
			return nil, err
		}
		m.Set(keyNode.Value, v)
	}

	// Merged keys never override keys written out in the mapping itself.
	for _, merge := range merges {
		sources := []*yaml.Node{merge}
		if merge.Kind == yaml.SequenceNode {
			sources = merge.Content
		}
		for _, src := range sources {
			v, err := nodeToValue(src)
			if err != nil {
				return nil, err
			}
			from, ok := v.(*value.Map)
			if !ok {
				return nil, fmt.Errorf("line %d: merge value must be a mapping", src.Line)
			}
			for k, item := range from.All() {
				if !m.Has(k) {
					m.Set(k, item)
				}
			}
		}
	}
	return m, nil
}

func scalarToValue(node *yaml.Node) (value.Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool", "!!int", "!!float":
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		// Strings, timestamps and binary stay as their source text.
		return node.Value, nil
	}
}
