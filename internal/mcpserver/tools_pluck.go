package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/dref/codec"
	"github.com/erraggy/dref/resolver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type pluckInput struct {
	Doc          docInput `json:"doc"                     jsonschema:"The document to pluck from"`
	Keys         []string `json:"keys"                    jsonschema:"Mapping keys to walk down from the document root, e.g. [\"definitions\", \"Pet\"]"`
	OutputFormat string   `json:"output_format,omitempty" jsonschema:"Output format: json or yaml (default: the input format)"`
}

type pluckOutput struct {
	Pointer  string `json:"pointer"`
	Format   string `json:"format"`
	Document string `json:"document"`
}

// handlePluck always resolves internal references, since the plucked
// fragment is taken out of the document they point into.
func handlePluck(_ context.Context, _ *mcp.CallToolRequest, input pluckInput) (*mcp.CallToolResult, pluckOutput, error) {
	if len(input.Keys) == 0 {
		return errResult(fmt.Errorf("keys must not be empty; use the resolve tool for the whole document")), pluckOutput{}, nil
	}

	r, err := resolver.New(cfg.resolverOptions()...)
	if err != nil {
		return errResult(err), pluckOutput{}, nil
	}
	in, err := input.Doc.load(r, true)
	if err != nil {
		return errResult(err), pluckOutput{}, nil
	}
	format, err := outputFormat(input.OutputFormat, in.format)
	if err != nil {
		return errResult(err), pluckOutput{}, nil
	}

	target, err := r.Pluck(in.doc, in.ctx, input.Keys...)
	if err != nil {
		return errResult(err), pluckOutput{}, nil
	}
	data, err := codec.Encode(target, format)
	if err != nil {
		return errResult(err), pluckOutput{}, nil
	}

	return nil, pluckOutput{
		Pointer:  keysPointer(input.Keys),
		Format:   format.String(),
		Document: string(data),
	}, nil
}

func keysPointer(keys []string) string {
	ptr := "#"
	for _, k := range keys {
		ptr += "/" + k
	}
	return ptr
}
