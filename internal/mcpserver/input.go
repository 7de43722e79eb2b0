package mcpserver

import (
	"fmt"

	"github.com/erraggy/dref/codec"
	"github.com/erraggy/dref/resolver"
	"github.com/erraggy/dref/value"
)

// inlineSource names inline content in decode errors.
const inlineSource = "<content>"

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
	Format  string `json:"format,omitempty"  jsonschema:"Format of inline content: json or yaml (detected when omitted)"`
	Dir     string `json:"dir,omitempty"     jsonschema:"Directory that relative file references in inline content are resolved against"`
}

// loaded is a decoded input document together with the context to resolve
// it in.
type loaded struct {
	doc    value.Value
	ctx    resolver.Context
	format codec.Format
}

// load decodes the document from whichever input was provided.
func (d docInput) load(r *resolver.Resolver, internal bool) (*loaded, error) {
	switch {
	case d.File != "" && d.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided (got 2)")
	case d.File != "":
		doc, err := r.Load(d.File)
		if err != nil {
			return nil, err
		}
		return &loaded{
			doc:    doc,
			ctx:    resolver.FileContext(d.File, doc, !internal),
			format: codec.FormatForPath(d.File),
		}, nil
	case d.Content != "":
		return d.decodeContent(internal)
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided (got 0)")
	}
}

func (d docInput) decodeContent(internal bool) (*loaded, error) {
	if int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set DREF_MCP_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}

	var dec codec.Decoder
	if d.Format != "" {
		f, ok := codec.ParseFormat(d.Format)
		if !ok {
			return nil, fmt.Errorf("invalid format %q; valid formats: json, yaml", d.Format)
		}
		dec.Format = f
	}

	data := []byte(d.Content)
	doc, err := dec.Decode(inlineSource, data)
	if err != nil {
		return nil, err
	}
	format := dec.Format
	if format == "" {
		format = codec.DetectFormat(inlineSource, data)
	}
	return &loaded{
		doc:    doc,
		ctx:    resolver.Context{Root: doc, Cwd: d.Dir, ExternalOnly: !internal},
		format: format,
	}, nil
}

// outputFormat picks the format a result is rendered in: the requested one,
// or the input's own format.
func outputFormat(requested string, in codec.Format) (codec.Format, error) {
	if requested == "" {
		return in, nil
	}
	f, ok := codec.ParseFormat(requested)
	if !ok {
		return "", fmt.Errorf("invalid output_format %q; valid formats: json, yaml", requested)
	}
	return f, nil
}

// internalFlag applies the server default to an optional tool flag.
func internalFlag(v *bool) bool {
	if v == nil {
		return cfg.Internal
	}
	return *v
}
