package mcpserver

import (
	"context"

	"github.com/erraggy/dref/codec"
	"github.com/erraggy/dref/resolver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveInput struct {
	Doc          docInput `json:"doc"                     jsonschema:"The document to resolve"`
	Internal     *bool    `json:"internal,omitempty"      jsonschema:"Also resolve internal #/ references (default from DREF_MCP_INTERNAL, false)"`
	OutputFormat string   `json:"output_format,omitempty" jsonschema:"Output format: json or yaml (default: the input format)"`
}

type resolveOutput struct {
	Format   string `json:"format"`
	Document string `json:"document"`
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	r, err := resolver.New(cfg.resolverOptions()...)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	in, err := input.Doc.load(r, internalFlag(input.Internal))
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	format, err := outputFormat(input.OutputFormat, in.format)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	resolved, err := r.Resolve(in.doc, in.ctx)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	data, err := codec.Encode(resolved, format)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	return nil, resolveOutput{Format: format.String(), Document: string(data)}, nil
}
