package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/dref/value"
	"github.com/goccy/go-json"
	"github.com/tidwall/pretty"
	"go.yaml.in/yaml/v4"
)

// prettyOptions keeps key order; mappings are already ordered.
var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Encode serializes v in the given format. JSON output is indented with two
// spaces. YAML output is block style and opens with an explicit "---"
// document start. Both end with a newline and keep mapping key order.
func Encode(v value.Value, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(v)
	case FormatYAML:
		return encodeYAML(v)
	default:
		return nil, fmt.Errorf("codec: unknown format %q", format)
	}
}

// EncodeForPath encodes v in the format FormatForPath picks for name.
func EncodeForPath(v value.Value, name string) ([]byte, error) {
	return Encode(v, FormatForPath(name))
}

func encodeJSON(v value.Value) ([]byte, error) {
	data, err := json.MarshalNoEscape(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encoding JSON: %w", err)
	}
	out := pretty.PrettyOptions(data, prettyOptions)
	if out == nil {
		return nil, fmt.Errorf("codec: formatting JSON")
	}
	return out, nil
}

func encodeYAML(v value.Value) ([]byte, error) {
	node, err := valueToNode(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encoding YAML: %w", err)
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{node}}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("codec: encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("codec: encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func scalarNode(tag, val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
}

// valueToNode converts a Value to a yaml.Node, keeping mapping order.
func valueToNode(v value.Value) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(val)), nil
	case int64:
		return scalarNode("!!int", strconv.FormatInt(val, 10)), nil
	case uint64:
		return scalarNode("!!int", strconv.FormatUint(val, 10)), nil
	case float64:
		return scalarNode("!!float", formatFloat(val)), nil
	case string:
		return scalarNode("!!str", val), nil
	case []any:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Content: make([]*yaml.Node, 0, len(val)),
		}
		for _, item := range val {
			child, err := valueToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case *value.Map:
		if val == nil {
			return scalarNode("!!null", "null"), nil
		}
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, 2*val.Len()),
		}
		for k, item := range val.All() {
			child, err := valueToNode(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	default:
		if value.KindOf(v) == value.Number {
			s := fmt.Sprint(v)
			if _, err := strconv.ParseInt(s, 10, 64); err == nil {
				return scalarNode("!!int", s), nil
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, err
			}
			return scalarNode("!!float", formatFloat(f)), nil
		}
		return nil, fmt.Errorf("cannot convert %T to yaml.Node", v)
	}
}

// formatFloat renders f so that YAML reads it back as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
